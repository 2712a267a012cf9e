package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fennwald/tracker-api/internal/entities"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the auth service",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the local session",
	RunE:  runLogout,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange the stored refresh token for a new token pair",
	RunE:  runRefresh,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runLogin(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	email := loginEmail
	if email == "" {
		fmt.Print("email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	fmt.Print("password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimSpace(line)

	if err := d.gateway.Login(commandContext(cmd), entities.Credentials{
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	user := d.gateway.Session().User()
	fmt.Printf("signed in as %s\n", user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	d.gateway.Logout(commandContext(cmd))
	fmt.Println("signed out")
	return nil
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	if err := d.gateway.Refresh(commandContext(cmd)); err != nil {
		return err
	}
	fmt.Println("session refreshed")
	return nil
}
