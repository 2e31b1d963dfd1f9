// Package kafkagen streams generated session records into a Kafka topic, for
// consumers that want a live feed instead of the chunked session files.
package kafkagen

import (
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake"
)

// Main holds the options for producing fake session data to Kafka.
type Main struct {
	Seed         int64    `help:"Random seed for generating data. -1 will use current nanosecond."`
	Num          uint64   `help:"Number of sessions to produce. 0 means infinity."`
	KafkaHosts   []string `help:"Comma separated list of Kafka hosts and ports."`
	Topic        string   `help:"Kafka topic to produce session records to."`
	Users        int      `help:"Size of the user pool sessions are drawn from."`
	Products     int      `help:"Size of the product pool sessions browse."`
	Categories   int      `help:"Number of categories backing the product pool."`
	TimespanDays int      `help:"Length in days of the simulated activity window."`
}

// NewMain returns a new Main.
func NewMain() *Main {
	return &Main{
		Seed:         42,
		Num:          0,
		KafkaHosts:   []string{"localhost:9092"},
		Topic:        "sessions",
		Users:        1000,
		Products:     500,
		Categories:   10,
		TimespanDays: 90,
	}
}

// Run begins generating session records and producing them to Kafka. Each
// message value is the same JSON document a chunk file would hold, keyed by
// session_id.
func (m *Main) Run() error {
	seed := m.Seed
	if seed == -1 {
		seed = time.Now().UnixNano()
	}
	src := fake.NewSessionSource(seed, m.Num, fake.Config{
		Users:        m.Users,
		Products:     m.Products,
		Categories:   m.Categories,
		TimespanDays: m.TimespanDays,
	})

	conf := sarama.NewConfig()
	conf.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(m.KafkaHosts, conf)
	if err != nil {
		return errors.Wrap(err, "getting kafka producer")
	}
	defer producer.Close()

	produced := 0
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "getting session record")
		}
		sess := rec.(*fake.Session)
		val, err := json.Marshal(sess)
		if err != nil {
			return errors.Wrap(err, "marshaling session")
		}
		_, _, err = producer.SendMessage(&sarama.ProducerMessage{
			Topic: m.Topic,
			Key:   sarama.StringEncoder(sess.SessionID),
			Value: sarama.ByteEncoder(val),
		})
		if err != nil {
			return errors.Wrap(err, "producing session")
		}
		produced++
		if produced%10000 == 0 {
			log.Printf("produced %d sessions to %s", produced, m.Topic)
		}
	}
	log.Printf("done: produced %d sessions to %s", produced, m.Topic)
	return nil
}
