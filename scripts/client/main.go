package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
)

type Reading struct {
	Type        string `json:"type"`
	Value       int    `json:"value"`
	DateCreated int64  `json:"date_created"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	device := flag.String("device", "device123", "device uuid to write to")
	flag.Parse()

	readingsURL := fmt.Sprintf("%s/devices/%s/readings/", *baseURL, *device)

	// 1. POST a handful of temperature readings
	seed := []Reading{
		{Type: "temperature", Value: 22, DateCreated: 1},
		{Type: "temperature", Value: 50, DateCreated: 5},
		{Type: "temperature", Value: 100, DateCreated: 20},
		{Type: "temperature", Value: 4, DateCreated: 25},
		{Type: "humidity", Value: 44, DateCreated: 7},
	}
	for _, r := range seed {
		payload, _ := json.Marshal(r)
		resp, err := http.Post(readingsURL, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			panic(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Println("POST", string(payload), "->", resp.Status, string(body))
	}

	// 2. GET the listing and every statistic
	for _, path := range []string{
		"",
		"?type=temperature&start=0&end=21",
		"min/?type=temperature",
		"max/?type=temperature",
		"median/?type=temperature",
		"mean/?type=temperature",
		"mode/?type=temperature",
		"quartiles/?type=temperature&start=0&end=100",
		"summary/?type=temperature",
	} {
		resp, err := http.Get(readingsURL + path)
		if err != nil {
			panic(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("GET %s -> %s %s", readingsURL+path, resp.Status, body)
	}
}
