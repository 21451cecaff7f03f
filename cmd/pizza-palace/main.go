// Package main provides the Pizza Palace billing CLI.
//
// The application walks a customer through ordering pizzas on the
// console, customizing each line item (size, toppings, extra cheese),
// and prints an itemized bill with GST and packaging charges.
package main

import (
	"fmt"
	"os"

	"pizza-palace/internal/bill"
	"pizza-palace/internal/config"
	"pizza-palace/internal/console"
	"pizza-palace/internal/logger"
	"pizza-palace/internal/menu"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel)

	m := menu.Default()
	if cfg.MenuFile != "" {
		m, err = menu.LoadFile(cfg.MenuFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load menu:", err)
			os.Exit(1)
		}

		log.Debug("menu loaded", "path", cfg.MenuFile)
	}

	session := console.NewSession(m, os.Stdin, os.Stdout, log)

	ord, err := session.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(1)
	}

	text, err := bill.Render(ord)
	if err != nil {
		fmt.Fprintln(os.Stderr, "render bill:", err)
		os.Exit(1)
	}

	fmt.Print(text)
	log.Debug("bill rendered", "items", len(ord.Items()), "total", ord.Total().StringFixed(2))
}
