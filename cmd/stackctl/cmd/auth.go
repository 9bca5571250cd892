package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the login session",
	Long: `Authentication commands.

Examples:
  stackctl auth login --email ada@example.com
  stackctl auth register --email ada@example.com --first-name Ada --last-name Lovelace
  stackctl auth whoami
  stackctl auth status
  stackctl auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  runAuthLogin,
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and persist the session",
	RunE:  runAuthRegister,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Long:  `Clear the persisted session. Works offline; no server call is made.`,
	RunE:  runAuthLogout,
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account (verified with the backend)",
	RunE:  runAuthWhoami,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the local session without a server call",
	RunE:  runAuthStatus,
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password (prompted when omitted)")
	authRegisterCmd.Flags().String("first-name", "", "first name")
	authRegisterCmd.Flags().String("last-name", "", "last name")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	authCmd.AddCommand(authStatusCmd)

	rootCmd.AddCommand(authCmd)
}

// readPassword reads a password from the password flag, falling back to a
// stdin prompt.
func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	mgr, _, err := getManager()
	if err != nil {
		return err
	}

	user, err := mgr.Login(context.Background(), email, password)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(user)
	}
	fmt.Printf("Signed in as %s <%s>\n", user.FullName(), user.Email)
	return nil
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	if email == "" || firstName == "" || lastName == "" {
		return fmt.Errorf("--email, --first-name and --last-name are required")
	}
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	mgr, _, err := getManager()
	if err != nil {
		return err
	}

	user, err := mgr.Register(context.Background(), skillstacker.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(user)
	}
	fmt.Printf("Account created. Signed in as %s <%s>\n", user.FullName(), user.Email)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	mgr, _, err := getManager()
	if err != nil {
		return err
	}
	mgr.Logout()
	fmt.Println("Signed out")
	return nil
}

func runAuthWhoami(cmd *cobra.Command, args []string) error {
	mgr, _, err := getManager()
	if err != nil {
		return err
	}
	if err := mgr.Init(context.Background()); err != nil {
		return err
	}

	user := mgr.CurrentUser()
	if user == nil {
		fmt.Println("Not signed in")
		return nil
	}

	if wantJSON() {
		return printStructured(user)
	}
	fmt.Printf("%s <%s>", user.FullName(), user.Email)
	if user.IsAdmin {
		fmt.Print(" (admin)")
	}
	fmt.Println()
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	_, store, err := getClient()
	if err != nil {
		return err
	}

	sess, err := store.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println("No local session")
		return nil
	}

	w := newTable()
	printTableHeader(w, "FIELD", "VALUE")
	if sess.User != nil {
		fmt.Fprintf(w, "user\t%s <%s>\n", sess.User.FullName(), sess.User.Email)
	}

	// Claims are displayed only; staleness is still decided by the
	// backend via 401.
	if claims, err := session.ParseClaims(sess.Token); err == nil {
		if claims.Subject != "" {
			fmt.Fprintf(w, "subject\t%s\n", claims.Subject)
		}
		if !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(w, "expires\t%s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
		}
	}
	fmt.Fprintf(w, "session file\t%s\n", store.Path())
	return w.Flush()
}
