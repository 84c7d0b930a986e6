package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/atorresprocessa/go-aspen-client/aspen"
	"github.com/atorresprocessa/go-aspen-client/aspen/auth"
	"github.com/atorresprocessa/go-aspen-client/aspen/util"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	docType := util.GetEnvOrDefault("ASPEN_DOC_TYPE", "CC")
	docNumber := util.GetEnvOrFailed("ASPEN_DOC_NUMBER")
	password := util.GetEnvOrFailed("ASPEN_PASSWORD")

	var env aspen.Environment
	if err := env.UnmarshalText([]byte(util.GetEnvOrDefault("ASPEN_ENV", "staging"))); err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	client, err := aspen.Initialize(aspen.Delegated).
		RoutingTo(env).
		WithIdentity(aspen.EnvAppIdentity()).
		Authenticate(ctx, auth.NewUserIdentity(docType, docNumber, password))

	if err != nil {
		logrus.Fatalf("can't authenticate: %v", err)
	}

	fmt.Printf("token scope: %s\n", client.AuthToken().Scope())

	accounts, err := client.Financial.GetAccounts(ctx)
	if err != nil {
		logrus.Fatalf("can't list accounts: %v", err)
	}

	for _, account := range accounts {
		fmt.Printf("%s %s balance %.2f\n", account.ID, account.MaskedPan, account.Balance)

		balances, err := client.Financial.GetBalances(ctx, account.ID)
		if err != nil {
			logrus.Fatalf("can't read balances: %v", err)
		}
		for _, balance := range balances {
			fmt.Printf("  %s %s %.2f\n", balance.TypeID, balance.TypeName, balance.Amount)
		}
	}

	menu, err := client.Settings.GetMenu(ctx)
	if err != nil {
		logrus.Fatalf("can't read menu: %v", err)
	}
	for _, item := range menu {
		fmt.Printf("menu: %s -> %s\n", item.Title, item.URL)
	}
}
