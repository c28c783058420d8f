package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartSaleConsumer connects to RabbitMQ, declares the sale.recorded queue
// (durable) and starts consuming. Each event is appended as one line to
// logs/sales.log, giving the agency an append-only audit trail of recorded
// sales. The function runs a reconnect loop with capped backoff and never
// returns in normal operation; processing errors reject the offending
// message without requeueing so the consumer cannot tight-loop on a bad
// payload.
func StartSaleConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("sale-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("sale-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("sale-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(saleQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(saleQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("sale-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev SaleRecordedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "sales.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	numero := ev.NumeroBoleto
	if numero == "" {
		numero = "-"
	}
	line := fmt.Sprintf("[%s] Venta registrada | id_transaccion=%d | localizador=%s | boleto=%s | tipo=%s | ruta=%s | cliente=%d | aerolinea=%d | venta=%s | utilidad=%s | comision=%s\n",
		ev.RecordedAt, ev.TransactionID, ev.Localizador, numero, ev.Tipo, ev.Ruta,
		ev.ClienteID, ev.AerolineaID, ev.MontoVenta, ev.Utilidad, ev.FeeComision)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
