package main

import (
	"fmt"
	"time"

	"friends-service/pkg/client"
)

func main() {
	api := client.New("http://localhost:8080")
	totalWaitTime := 0
	for {
		err := api.Health()
		if err == nil {
			fmt.Println("Service is up.")
			break
		}
		fmt.Println(err)
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
