package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"auctionhouse/internal/adapter/banking"
	"auctionhouse/internal/adapter/config"
	"auctionhouse/internal/adapter/logger"
	"auctionhouse/internal/adapter/messaging"
	"auctionhouse/internal/adapter/storage/memory"
	"auctionhouse/internal/core/domain"
	"auctionhouse/internal/core/port"
	"auctionhouse/internal/core/service"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error: %s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	repo := memory.NewStorage()
	notifier := messaging.NewLogNotifier(log.Named("Messaging"))
	ledger := banking.NewLedger(log.Named("Banking"))

	house, err := service.NewAuctionHouse(repo, notifier, ledger,
		service.Parameters{
			BuyerPremium:  conf.House.BuyerPremium,
			Commission:    conf.House.Commission,
			HouseAccount:  conf.House.Account,
			HouseAuthCode: conf.House.AuthCode,
		},
		log.Named("Service"))
	if err != nil {
		fmt.Printf("auction house creating error: %s", err)
		return
	}

	runConsole(context.Background(), house, ledger)
}

const consoleHelp = `commands:
  register-buyer <name> <address> <account> <authcode>
  register-seller <name> <address> <account>
  add-lot <seller> <number> <reserve> <description...>
  catalogue
  interest <buyer> <number>
  open <auctioneer> <address> <number>
  bid <buyer> <number> <amount>
  close <auctioneer> <number>
  bad-account <account>
  ledger
  quit`

// runConsole drives the auction house from stdin, one operation per line.
func runConsole(ctx context.Context, house port.AuctionHouse, ledger *banking.Ledger) {
	fmt.Println(consoleHelp)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch cmd := args[0]; {
		case cmd == "quit" || cmd == "exit":
			return
		case cmd == "help":
			fmt.Println(consoleHelp)
		case cmd == "register-buyer" && len(args) == 5:
			report(house.RegisterBuyer(ctx, args[1], args[2], args[3], args[4]))
		case cmd == "register-seller" && len(args) == 4:
			report(house.RegisterSeller(ctx, args[1], args[2], args[3]))
		case cmd == "add-lot" && len(args) >= 5:
			number, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("bad lot number %q\n", args[2])
				continue
			}
			reserve, err := domain.NewMoney(args[3])
			if err != nil {
				fmt.Printf("bad reserve price %q\n", args[3])
				continue
			}
			report(house.AddLot(ctx, args[1], number, strings.Join(args[4:], " "), reserve))
		case cmd == "catalogue":
			entries, err := house.ViewCatalogue(ctx)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				continue
			}
			for _, e := range entries {
				fmt.Printf("%4d  %-20s  %s\n", e.Number, e.Status, e.Description)
			}
		case cmd == "interest" && len(args) == 3:
			number, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("bad lot number %q\n", args[2])
				continue
			}
			report(house.NoteInterest(ctx, args[1], number))
		case cmd == "open" && len(args) == 4:
			number, err := strconv.Atoi(args[3])
			if err != nil {
				fmt.Printf("bad lot number %q\n", args[3])
				continue
			}
			report(house.OpenAuction(ctx, args[1], args[2], number))
		case cmd == "bid" && len(args) == 4:
			number, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("bad lot number %q\n", args[2])
				continue
			}
			amount, err := domain.NewMoney(args[3])
			if err != nil {
				fmt.Printf("bad amount %q\n", args[3])
				continue
			}
			report(house.MakeBid(ctx, args[1], number, amount))
		case cmd == "close" && len(args) == 3:
			number, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Printf("bad lot number %q\n", args[2])
				continue
			}
			outcome, err := house.CloseAuction(ctx, args[1], number)
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				continue
			}
			fmt.Println(outcome)
		case cmd == "bad-account" && len(args) == 2:
			ledger.MarkBadAccount(args[1])
			fmt.Println("OK")
		case cmd == "ledger":
			for _, e := range ledger.Entries() {
				fmt.Printf("%s  %s -> %s  %s\n", e.Reference, e.FromAccount, e.ToAccount, e.Amount)
			}
		default:
			fmt.Printf("unknown command %q (try help)\n", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	fmt.Println("OK")
}
