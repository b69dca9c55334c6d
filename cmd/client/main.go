package main

import (
	"fmt"
	"math/rand"
	"time"

	"friends-service/pkg/client"
	"friends-service/pkg/model"
)

const serverPort = 8080

// payload is the friend that all benchmark requests submit.
var payload = model.Friend{
	Name:  "Marcus Antonius",
	Email: "marcus.antonius@rome.example",
	Phone: strPtr("+39 999 777 555"),
	Notes: strPtr("met at the forum"),
}

// Usage example on the command line:
// > go run main.go
func main() {
	api := client.New(fmt.Sprintf("http://localhost:%d", serverPort))
	fmt.Println()
	fmt.Println("  Elements      POST       PUT       GET    DELETE ")
	fmt.Println("---------------------------------------------------")
	sizes := []int{1000, 5000, 10000, 50000, 100000}
	for _, loops := range sizes {
		first, err := api.Create(payload)
		if err != nil {
			fmt.Println("could not create friend", err)
			panic(err)
		}
		fmt.Printf("%10d", loops)
		{
			// POST requests
			var duration int64
			for i := 0; i < loops; i++ {
				duration += timed(func() {
					if _, err := api.Create(payload); err != nil {
						panic(err)
					}
				})
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// PUT requests
			callInLoop(first.Id, loops, func(id int64) {
				if _, err := api.Update(id, payload); err != nil {
					panic(err)
				}
			})
		}
		{
			// GET requests
			callInLoop(first.Id, loops, func(id int64) {
				if _, err := api.Get(id); err != nil {
					panic(err)
				}
			})
		}
		{
			// DELETE requests
			callInLoop(first.Id, loops, func(id int64) {
				if err := api.Delete(id); err != nil {
					panic(err)
				}
			})
		}
		if err := api.Delete(first.Id); err != nil {
			panic(err)
		}
		fmt.Println()
	}
}

func callInLoop(firstID int64, loops int, f func(id int64)) {
	ids := createRandomSliceWithIDs(firstID+1, loops)
	var duration int64
	for _, id := range ids {
		duration += timed(func() { f(id) })
	}
	fmt.Printf("%10d", duration/int64(loops*1000))
}

func createRandomSliceWithIDs(firstID int64, loops int) []int64 {
	ids := make([]int64, 0, loops)
	for i := 0; i < loops; i++ {
		ids = append(ids, firstID+int64(i))
	}
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids
}

func timed(f func()) int64 {
	before := time.Now().UnixNano()
	f()
	return time.Now().UnixNano() - before
}

func strPtr(s string) *string {
	return &s
}
