package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the Warfront API.

Credentials are stored in <data-dir>/auth.json and reused by every
command until you log out.

Subcommands:
  signup    Register a new commander account
  login     Login with email and password
  logout    Logout and remove credentials
  status    Show current authentication status

Examples:
  warfront auth signup --name Napoleon --email nap@example.com --password secret1
  warfront auth login --email nap@example.com --password secret1
  warfront auth status
  warfront auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the Warfront API",
	Long: `Login to the Warfront API with your email and password.

After logging in, your access token is saved locally and picked up by
every other command.

Examples:
  warfront auth login --email nap@example.com --password secret1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		if err := manager.Login(cmd.Context(), email, password); err != nil {
			return err
		}

		sess, _ := manager.Current()
		fmt.Printf("Logged in as Commander %s.\n", sess.User.Name)
		return nil
	},
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new commander account",
	Long: `Register a new commander account on the Warfront API.

The password must be at least 6 characters. On success you are logged
in immediately.

Examples:
  warfront auth signup --name Napoleon --email nap@example.com --password secret1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		if err := manager.Signup(cmd.Context(), name, email, password, password); err != nil {
			return err
		}

		sess, _ := manager.Current()
		fmt.Printf("Welcome to the front, Commander %s.\n", sess.User.Name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove credentials",
	Long: `Logout and remove the stored authentication credentials.

Examples:
  warfront auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		sess, ok := manager.Current()
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := manager.Logout(); err != nil {
			return err
		}

		fmt.Printf("Logged out Commander %s.\n", sess.User.Name)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, manager, err := bootstrap(cmd)
		if err != nil {
			return err
		}

		sess, ok := manager.Current()
		if !ok {
			fmt.Println("Not logged in.")
			fmt.Println()
			fmt.Println("Use 'warfront auth login' or 'warfront auth signup' to authenticate.")
			return nil
		}

		fmt.Printf("Logged in as: %s <%s>\n", sess.User.Name, sess.User.Email)
		fmt.Printf("API endpoint: %s\n", cfg.APIURL)
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("email", "", "Email address (required)")
	authLoginCmd.Flags().String("password", "", "Password (required)")

	authSignupCmd.Flags().String("name", "", "Commander name (required)")
	authSignupCmd.Flags().String("email", "", "Email address (required)")
	authSignupCmd.Flags().String("password", "", "Password, at least 6 characters (required)")

	rootCmd.AddCommand(authCmd)
}
