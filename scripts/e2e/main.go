package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Publish a fixed set of readings to the ingest topic
// 2. Wait for the ingester to store them
// 3. Query every statistic endpoint for the device
// 4. Compare against the expected values and exit non-zero on mismatch

type record struct {
	DeviceUUID  string `json:"device_uuid"`
	Type        string `json:"type"`
	Value       int    `json:"value"`
	DateCreated int64  `json:"date_created"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka bootstrap broker")
	topic := flag.String("topic", "readings.ingest", "ingest topic")
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	wait := flag.Duration("wait", 20*time.Second, "time to allow the ingester to catch up")
	flag.Parse()

	device := fmt.Sprintf("e2e-%d", time.Now().UnixNano())
	values := []int{22, 50, 100, 29, 4, 28, 100, 52, 4, 100}
	dates := []int64{1, 5, 20, 20, 25, 30, 40, 50, 50, 50}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(*brokers),
		Topic: *topic,
	}
	defer writer.Close()

	messages := make([]kafka.Message, 0, len(values))
	for i, v := range values {
		value, _ := json.Marshal(record{DeviceUUID: device, Type: "temperature", Value: v, DateCreated: dates[i]})
		messages = append(messages, kafka.Message{Key: []byte(device), Value: value})
	}
	if err := writer.WriteMessages(context.Background(), messages...); err != nil {
		fmt.Printf("failed to write messages: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Published %d readings for %s to %s\n", len(messages), device, *topic)

	time.Sleep(*wait)

	expected := map[string]string{
		"min/?type=temperature":                       `{"device_uuid":"%[1]s","type":"temperature","value":4,"date_created":25}`,
		"max/?type=temperature":                       `{"device_uuid":"%[1]s","type":"temperature","value":100,"date_created":20}`,
		"median/?type=temperature":                    `{"device_uuid":"%[1]s","type":"temperature","value":50,"date_created":5}`,
		"mean/?type=temperature":                      `{"value":49}`,
		"mode/?type=temperature":                      `{"value":100}`,
		"quartiles/?type=temperature&start=1&end=101": `{"quartile_1":22,"quartile_3":100}`,
	}

	failed := false
	for path, want := range expected {
		url := fmt.Sprintf("%s/devices/%s/readings/%s", *baseURL, device, path)
		resp, err := http.Get(url)
		if err != nil {
			fmt.Printf("GET %s: %v\n", path, err)
			failed = true
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if !sameJSON(body, []byte(fmt.Sprintf(want, device))) {
			fmt.Printf("MISMATCH %s\n  expected: %s\n  received: %s\n", path, fmt.Sprintf(want, device), body)
			failed = true
			continue
		}
		fmt.Printf("OK %s\n", path)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("E2E test completed")
}

func sameJSON(a, b []byte) bool {
	var va, vb any
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return false
	}
	ja, _ := json.Marshal(va)
	jb, _ := json.Marshal(vb)
	return string(ja) == string(jb)
}
