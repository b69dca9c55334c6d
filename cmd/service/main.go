package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"friends-service/internal/service"
	"friends-service/internal/store"
)

// Usage example on the command line:
// > PORT=8080 DBHOST=localhost DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}
	sqlDB := store.OpenDatabase()
	friendStore, err := store.New(sqlDB)
	if err != nil {
		log.Fatal(err)
	}
	defer friendStore.Close()
	router := service.New(friendStore).SetupHttpRouter()
	_, err = strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		fmt.Println("could not parse PORT env variable", err)
		panic(err)
	}
	router.Run(":" + os.Getenv("PORT"))
}
