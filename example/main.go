// Package main demonstrates usage of the pms-exceptions packages.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/next-trace/pms-exceptions/code"
	"github.com/next-trace/pms-exceptions/contract"
	"github.com/next-trace/pms-exceptions/exception"
	"github.com/next-trace/pms-exceptions/level"
	"github.com/next-trace/pms-exceptions/response"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Direct construction
	nf := exception.NewObjectNotFound("User with ID 123 not found", exception.WithDetail("user_id: 123"))
	exception.Log(logger, nf)

	// Explicit level
	sec := exception.NewSecurityWithLevel("Unauthorized access attempt", level.Fatal,
		exception.WithDetail("Missing API key"))
	exception.Log(logger, sec)

	// Send side: exception => wire record => JSON
	payload, err := response.Marshal(exception.NewValidation("Invalid email format",
		exception.WithDetail("email: test@invalid")).ToPmsResponse())
	if err != nil {
		logger.Error().Err(err).Msg("marshal pms response")
		os.Exit(1)
	}

	fmt.Println(string(payload))

	// Receive side: JSON => wire record => exception
	wire, err := response.Unmarshal(payload)
	if err != nil {
		logger.Error().Err(err).Msg("unmarshal pms response")
		os.Exit(1)
	}

	exception.Log(logger, exception.FromResponse(wire))
	exception.Log(logger, exception.FromPmsResponse(string(code.Timeout), "Request timed out after 30s",
		exception.WithDetail("endpoint: /api/users")))

	if _, err := findUser(0); err != nil {
		exception.Log(logger, exception.Ensure(err))
	}
}

func findUser(id int) (string, contract.BaseError) {
	if id == 0 {
		return "", exception.NewObjectNotFound(fmt.Sprintf("User with id %d not found", id),
			exception.WithDetail(fmt.Sprintf("user_id: %d", id)))
	}

	return fmt.Sprintf("User %d", id), nil
}
