package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talentpipe/talentpipe/internal/config"
	"github.com/talentpipe/talentpipe/internal/forms"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the recruitment backend",
	Example: `  talentpipe login
  talentpipe login --email recruiter@example.com --remember`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		remember, _ := cmd.Flags().GetBool("remember")

		if email == "" {
			email = promptDefault("Email", application.Config.RememberEmail)
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		if err := forms.Validate(forms.LoginRules(forms.Credentials{Email: email, Password: password})); err != nil {
			return err
		}

		session, err := application.Sessions.SignIn(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		if remember {
			if err := config.Set("remember_email", email); err != nil {
				cmd.Printf("Warning: could not remember email: %v\n", err)
			}
		}

		name := session.User.Name
		if name == "" {
			name = session.User.Email
		}
		cmd.Printf("✓ Logged in as %s\n", name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if application.Sessions.CurrentSession() == nil {
			cmd.Println("Not logged in.")
			return nil
		}
		if err := application.Sessions.SignOut(cmd.Context()); err != nil {
			// The local session is cleared even when the revoke call fails.
			cmd.Printf("Warning: %v\n", err)
		}
		cmd.Println("✓ Logged out")
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		name := promptLine("Full Name")
		email := promptLine("Email")
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		confirmPw, err := promptPassword("Confirm Password")
		if err != nil {
			return err
		}

		creds := forms.Credentials{Name: name, Email: email, Password: password, Confirm: confirmPw}
		if err := forms.Validate(forms.RegisterRules(creds)); err != nil {
			return err
		}

		if err := application.Sessions.SignUp(cmd.Context(), email, password, name); err != nil {
			return err
		}
		cmd.Println("✓ Account created. Check your email to confirm, then run 'talentpipe login'.")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Send a password recovery email",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			email = promptLine("Email")
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}
		if err := application.Sessions.ResetPassword(cmd.Context(), email); err != nil {
			return err
		}
		cmd.Printf("✓ Recovery email sent to %s\n", email)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		session := application.Sessions.CurrentSession()
		if session == nil {
			cmd.Println("Not logged in. Run 'talentpipe login'.")
			return nil
		}
		cmd.Println(titleStyle.Render("Session"))
		cmd.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(session.User.Email))
		if session.User.Name != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(session.User.Name))
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Expires:"), valueStyle.Render(session.ExpiresAt.Local().Format("Jan 2, 2006 15:04")))
		cmd.Printf("%s %s\n", labelStyle.Render("Device:"), dimStyle.Render(application.Sessions.DeviceID()))
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Login email")
	loginCmd.Flags().Bool("remember", false, "Remember the email for the next login")
	resetPasswordCmd.Flags().String("email", "", "Account email")

	rootCmd.AddCommand(loginCmd, logoutCmd, registerCmd, resetPasswordCmd, whoamiCmd)
}
