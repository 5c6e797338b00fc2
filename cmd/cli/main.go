package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/fintrack/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "FinTrack CLI tool",
		Long:  `A command line interface for interacting with the FinTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinTrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var kind, amount, date, description string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(kind, amount, date, description)
		},
	}
	addCmd.Flags().StringVar(&kind, "kind", "Expense", "Transaction kind (Income or Expense)")
	addCmd.Flags().StringVar(&amount, "amount", "", "Transaction amount")
	addCmd.Flags().StringVar(&date, "date", "", "Transaction date (DD-MM-YYYY)")
	addCmd.Flags().StringVar(&description, "description", "", "Transaction description")

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Overwrite a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			editTransaction(args[0], kind, amount, date, description)
		},
	}
	editCmd.Flags().StringVar(&kind, "kind", "Expense", "Transaction kind (Income or Expense)")
	editCmd.Flags().StringVar(&amount, "amount", "", "Transaction amount")
	editCmd.Flags().StringVar(&date, "date", "", "Transaction date (DD-MM-YYYY)")
	editCmd.Flags().StringVar(&description, "description", "", "Transaction description")

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			removeTransaction(args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every transaction",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance operations",
	}

	balanceGetCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the tracked balance",
		Run: func(cmd *cobra.Command, args []string) {
			getBalance()
		},
	}

	balanceSetCmd := &cobra.Command{
		Use:   "set <value>",
		Short: "Replace the tracked balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setBalance(args[0])
		},
	}

	balanceCmd.AddCommand(balanceGetCmd, balanceSetCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}

	reportTotalsCmd := &cobra.Command{
		Use:   "totals",
		Short: "Show income vs expense totals",
		Run: func(cmd *cobra.Command, args []string) {
			showTotals()
		},
	}

	reportMonthlyCmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the per-month income/expense series",
		Run: func(cmd *cobra.Command, args []string) {
			showMonthly()
		},
	}

	reportCategoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Show expense totals per category",
		Run: func(cmd *cobra.Command, args []string) {
			showCategories()
		},
	}

	reportCmd.AddCommand(reportTotalsCmd, reportMonthlyCmd, reportCategoriesCmd)

	rootCmd.AddCommand(addCmd, editCmd, removeCmd, listCmd, balanceCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path string, payload any) []byte {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	return respBody
}

func parseCLIID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		fmt.Printf("Invalid transaction id: %s\n", raw)
		os.Exit(1)
	}
	return id
}

func addTransaction(kind, amount, date, description string) {
	body := doRequest(http.MethodPost, "/api/v1/transactions", dto.TransactionRequest{
		Kind:        kind,
		Amount:      amount,
		Date:        date,
		Description: description,
	})

	var tx dto.TransactionResponse
	if err := json.Unmarshal(body, &tx); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded transaction %d: %s %s on %s\n", tx.ID, tx.Kind, tx.Amount, tx.Date)
}

func editTransaction(rawID, kind, amount, date, description string) {
	id := parseCLIID(rawID)
	body := doRequest(http.MethodPut, fmt.Sprintf("/api/v1/transactions/%d", id), dto.TransactionRequest{
		Kind:        kind,
		Amount:      amount,
		Date:        date,
		Description: description,
	})

	var tx dto.TransactionResponse
	if err := json.Unmarshal(body, &tx); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated transaction %d: %s %s on %s\n", tx.ID, tx.Kind, tx.Amount, tx.Date)
}

func removeTransaction(rawID string) {
	id := parseCLIID(rawID)
	doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/transactions/%d", id), nil)
	fmt.Printf("Removed transaction %d\n", id)
}

func listTransactions() {
	body := doRequest(http.MethodGet, "/api/v1/transactions", nil)

	var listing dto.ListTransactionsResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if listing.Total == 0 {
		fmt.Println("No transactions recorded")
		return
	}

	for _, tx := range listing.Transactions {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n", tx.ID, tx.Kind, tx.Amount, tx.Date, tx.Description)
	}
	fmt.Printf("Total: %d\n", listing.Total)
}

func getBalance() {
	body := doRequest(http.MethodGet, "/api/v1/balance", nil)

	var balance dto.BalanceResponse
	if err := json.Unmarshal(body, &balance); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Balance: %s\n", balance.Balance)
}

func setBalance(value string) {
	body := doRequest(http.MethodPut, "/api/v1/balance", dto.SetBalanceRequest{Balance: value})

	var balance dto.BalanceResponse
	if err := json.Unmarshal(body, &balance); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Balance set to %s\n", balance.Balance)
}

func showTotals() {
	body := doRequest(http.MethodGet, "/api/v1/reports/totals", nil)

	var totals dto.TotalsResponse
	if err := json.Unmarshal(body, &totals); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if !totals.HasData {
		fmt.Println("No data to report")
		return
	}

	fmt.Printf("Income:  %s\nExpense: %s\n", totals.Income, totals.Expense)
}

func showMonthly() {
	body := doRequest(http.MethodGet, "/api/v1/reports/monthly", nil)

	var series []dto.MonthlyPointResponse
	if err := json.Unmarshal(body, &series); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(series) == 0 {
		fmt.Println("No data to report")
		return
	}

	for _, point := range series {
		fmt.Printf("%s\tincome %s\texpense %s\n", point.Month, point.Income, point.Expense)
	}
}

func showCategories() {
	body := doRequest(http.MethodGet, "/api/v1/reports/categories", nil)

	var breakdown map[string]string
	if err := json.Unmarshal(body, &breakdown); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(breakdown) == 0 {
		fmt.Println("No data to report")
		return
	}

	for category, amount := range breakdown {
		fmt.Printf("%s\t%s\n", category, amount)
	}
}
