package main

import "github.com/joho/godotenv"

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()
	Execute()
}
