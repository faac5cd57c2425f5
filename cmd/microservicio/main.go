package main

import (
	"fmt"
	"os"

	// database, cache and message drivers
	_ "github.com/ncobase/microservicio/data/kafka"
	_ "github.com/ncobase/microservicio/data/mysql"
	_ "github.com/ncobase/microservicio/data/postgres"
	_ "github.com/ncobase/microservicio/data/rabbitmq"
	_ "github.com/ncobase/microservicio/data/redis"
	_ "github.com/ncobase/microservicio/data/sqlite"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
