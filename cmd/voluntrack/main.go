package main

import (
	"context"
	"log"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
