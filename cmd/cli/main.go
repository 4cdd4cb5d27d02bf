package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(userCmd(), walletCmd(), depositCmd(), withdrawCmd(), transferCmd(), summaryCmd(), exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
	}

	var email, name, password, role string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/users", map[string]string{
				"email":    email,
				"name":     name,
				"password": password,
				"role":     role,
			})
		},
	}
	createCmd.Flags().StringVar(&email, "email", "", "User email")
	createCmd.Flags().StringVar(&name, "name", "", "User name")
	createCmd.Flags().StringVar(&password, "password", "", "User password")
	createCmd.Flags().StringVar(&role, "role", "operator", "User role (admin, operator, viewer)")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("password")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/users", nil)
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	var userID, currency string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/users/%s/wallets", userID), map[string]string{
				"currency": currency,
			})
		},
	}
	createCmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	createCmd.Flags().StringVar(&currency, "currency", "", "Wallet currency (BGN, EUR, GBP, USD)")
	createCmd.MarkFlagRequired("user")
	createCmd.MarkFlagRequired("currency")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/users/%s/wallets", userID), nil)
		},
	}
	listCmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	listCmd.MarkFlagRequired("user")

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}

func depositCmd() *cobra.Command {
	var userID, walletID, amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/users/%s/wallets/%s/deposit", userID, walletID), map[string]string{
				"amount": amount,
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to deposit")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("wallet")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawCmd() *cobra.Command {
	var userID, walletID, amount string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/users/%s/wallets/%s/withdraw", userID, walletID), map[string]string{
				"amount": amount,
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount to withdraw")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("wallet")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func transferCmd() *cobra.Command {
	var userID, walletID, receiverID, receiverWalletID, amount string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer between wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("/api/v1/users/%s/wallets/%s/transfer", userID, walletID), map[string]string{
				"receiver_id":        receiverID,
				"receiver_wallet_id": receiverWalletID,
				"amount":             amount,
			})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Sender user ID")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Sender wallet ID")
	cmd.Flags().StringVar(&receiverID, "receiver", "", "Receiver user ID")
	cmd.Flags().StringVar(&receiverWalletID, "receiver-wallet", "", "Receiver wallet ID")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in the sender wallet's currency")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("wallet")
	cmd.MarkFlagRequired("receiver")
	cmd.MarkFlagRequired("receiver-wallet")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func summaryCmd() *cobra.Command {
	var userID, walletID, start, end string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize a wallet's entries over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/users/%s/wallets/%s/entries/summary", userID, walletID),
				url.Values{"start": {start}, "end": {end}})
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD or RFC3339)")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("wallet")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func exportCmd() *cobra.Command {
	var userID, walletID, start, end, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a wallet's entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := get(fmt.Sprintf("/api/v1/users/%s/wallets/%s/entries/export", userID, walletID),
				url.Values{"start": {start}, "end": {end}})
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(string(body))
				return nil
			}

			if err := os.WriteFile(output, body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	cmd.Flags().StringVar(&walletID, "wallet", "", "Wallet ID")
	cmd.Flags().StringVar(&start, "start", "", "Range start (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&output, "output", "", "Write the CSV to a file instead of stdout")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("wallet")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}

func postJSON(path string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func getJSON(path string, query url.Values) error {
	body, err := get(path, query)
	if err != nil {
		return err
	}

	fmt.Println(string(body))
	return nil
}

func get(path string, query url.Values) ([]byte, error) {
	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("server returned %s: %s", resp.Status, string(body))
	}

	return body, nil
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s: %s", resp.Status, string(body))
	}

	fmt.Println(string(body))
	return nil
}
