package main

import (
	"github.com/joho/godotenv"

	"ecommerce_record_service/cmd"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cmd.Execute()
}
