package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/hotelx/pkg/model"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, err = promptIfEmpty(email, "Email: "); err != nil {
				return err
			}
			if password, err = promptIfEmpty(password, "Password: "); err != nil {
				return err
			}

			res := identity.Login(cmd.Context(), model.LoginData{Email: email, Password: password})
			if !res.OK() {
				return resultErr(res.Errors)
			}

			if err := saveCredentials(res.Data); err != nil {
				return err
			}
			p := session.Principal()
			fmt.Printf("Logged in as %s %s <%s>\n", p.FirstName, p.LastName, p.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var data model.RegisterData

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if data.ConfirmedPassword == "" {
				data.ConfirmedPassword = data.Password
			}

			res := identity.Register(cmd.Context(), data)
			if !res.OK() {
				return resultErr(res.Errors)
			}

			if err := saveCredentials(res.Data); err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s\n", data.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&data.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&data.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&data.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&data.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&data.ConfirmedPassword, "confirm-password", "", "Password confirmation (defaults to --password)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := identity.Logout(cmd.Context())
			// The local session is cleared even when the server call fails;
			// stored credentials go with it.
			if err := clearCredentials(); err != nil {
				return err
			}
			if !res.OK() {
				fmt.Println("Logged out locally; server logout failed:", strings.Join(res.Errors, ", "))
				return nil
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := session.Principal()
			if p.Anonymous() {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%-14s %s\n", "ID:", p.ID)
			fmt.Printf("%-14s %s %s\n", "Name:", p.FirstName, p.LastName)
			fmt.Printf("%-14s %s\n", "Email:", p.Email)
			if p.PersonalCode != "" {
				fmt.Printf("%-14s %s\n", "Personal code:", p.PersonalCode)
			}
			fmt.Printf("%-14s %s\n", "Role:", p.Role)
			return nil
		},
	}
}

func promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
