package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventCustomerCreated        = "CustomerCreated"
	EventCustomerAddressChanged = "CustomerAddressChanged"
	EventProductCreated         = "ProductCreated"
)

const (
	EventsExchange = "ecommerce.events"

	CustomerCreatedRoutingKey        = "customer.created.v1"
	CustomerAddressChangedRoutingKey = "customer.address-changed.v1"
	ProductCreatedRoutingKey         = "product.created.v1"

	serviceName = "checkout-service-go"
)

// DefaultRoutes maps each forwarded event to its routing key.
func DefaultRoutes() map[string]string {
	return map[string]string{
		EventCustomerCreated:        CustomerCreatedRoutingKey,
		EventCustomerAddressChanged: CustomerAddressChangedRoutingKey,
		EventProductCreated:         ProductCreatedRoutingKey,
	}
}

func DialRabbit(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

func declareEventsExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}
