package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jdgomez/homebank/internal/bank"
	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/logger"
	"github.com/jdgomez/homebank/internal/modal"
	"github.com/jdgomez/homebank/internal/storage"
)

func main() {
	log := logger.New("cli")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		runSeed(log)
	case "list":
		runList(log)
	case "users":
		runUsers()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Homebank CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed      Populate a data directory with demo records for a user")
	fmt.Println("  list      Print the stored collections of a user")
	fmt.Println("  users     Print the fixed user directory")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func openService(dataDir string, log zerolog.Logger) (*bank.Service, error) {
	kv, err := storage.NewFileStore(dataDir, log)
	if err != nil {
		return nil, err
	}
	center := modal.NewCenter()
	notify := modal.NewNotifier(center, 0, log)
	return bank.NewService(kv, center, notify, log), nil
}

func runSeed(log zerolog.Logger) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	dataDir := fs.String("data", "data", "data directory")
	userID := fs.Int("user", 1, "user id to seed")
	fs.Parse(os.Args[2:])

	svc, err := openService(*dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	ctx := context.Background()

	account, err := svc.CreateAccount(ctx, *userID, bank.AccountInput{
		AccountType:    domain.AccountAhorro,
		AccountState:   domain.StateActiva,
		AccountNumber:  "1111222233334444",
		Bank:           "Bancolombia",
		IncomeType:     domain.IncomePasivo,
		CurrentBalance: decimal.NewFromInt(100000),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed account")
	}

	if _, err := svc.CreateIncome(ctx, *userID, bank.IncomeInput{
		Code:       "SAL01",
		Type:       domain.MovementIngreso,
		IncomeName: "Salario",
		IncomeType: domain.IncomeActivo,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed income")
	}

	if _, err := svc.CreateAlert(ctx, *userID, bank.AlertInput{
		Name: "Pagar arriendo",
		Type: domain.AlertRecordatorio,
		Date: time.Now().AddDate(0, 1, 0),
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed alert")
	}

	log.Info().
		Int("user_id", *userID).
		Str("account_number", account.AccountNumber).
		Msg("Demo data seeded")
}

func runList(log zerolog.Logger) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dataDir := fs.String("data", "data", "data directory")
	userID := fs.Int("user", 1, "user id to list")
	fs.Parse(os.Args[2:])

	svc, err := openService(*dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data directory")
	}

	accounts, err := svc.Accounts(*userID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load accounts")
	}
	fmt.Printf("Accounts (%d):\n", len(accounts))
	for _, a := range accounts {
		fmt.Printf("  %s  %-10s  %-9s  %s  $%s\n", a.AccountNumber, a.Bank, a.AccountType, a.AccountState, a.CurrentBalance)
	}

	incomes, err := svc.Incomes(*userID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load incomes")
	}
	fmt.Printf("Incomes (%d):\n", len(incomes))
	for _, i := range incomes {
		fmt.Printf("  %-8s  %-8s  %s\n", i.Code, i.Type, i.IncomeName)
	}

	transactions, err := svc.Transactions(*userID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load transactions")
	}
	fmt.Printf("Transactions (%d):\n", len(transactions))
	for _, tx := range transactions {
		fmt.Printf("  #%d  %s  %s  $%s\n", tx.TransactionID, tx.Date.Format("2006-01-02 15:04"), tx.Type, tx.Amount)
	}

	alerts, err := svc.Alerts(*userID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load alerts")
	}
	fmt.Printf("Alerts (%d):\n", len(alerts))
	for _, a := range alerts {
		fmt.Printf("  #%d  %-12s  %s  %s\n", a.AlertID, a.Type, a.Date.Format("2006-01-02 15:04"), a.Name)
	}
}

func runUsers() {
	for _, u := range domain.DefaultUsers().All() {
		fmt.Printf("  %d  %-6s  %-30s  %s\n", u.ID, u.Role, u.Email, u.Name)
	}
}
