package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HasanAboShally/dayma/internal/cli/syncclient"
)

// syncSettings resolves server coordinates from flags, DAYMA_* env vars and
// the config file, in that order.
type syncSettings struct {
	Server string
	Token  string
	Device string
}

func loadSyncSettings(server, token, device string) syncSettings {
	v := viper.New()
	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("device", defaultDevice())
	v.SetConfigName(".dayma")
	v.SetEnvPrefix("DAYMA")
	v.AutomaticEnv()
	v.AddConfigPath("./")
	_ = v.ReadInConfig()

	s := syncSettings{
		Server: v.GetString("server"),
		Token:  v.GetString("token"),
		Device: v.GetString("device"),
	}
	if server != "" {
		s.Server = server
	}
	if token != "" {
		s.Token = token
	}
	if device != "" {
		s.Device = device
	}
	return s
}

func defaultDevice() string {
	host, err := os.Hostname()
	if err != nil {
		return "cli"
	}
	return host
}

func addSync(topLevel *cobra.Command) {
	var server, token, device string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Back the tracker up to a dayma sync server.",
		Example: `
dayma sync login --email me@example.com --password secret
dayma sync push
dayma sync pull
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&server, "server", "", "Sync server base URL (or DAYMA_SERVER).")
	cmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token from dayma sync login (or DAYMA_TOKEN).")
	cmd.PersistentFlags().StringVar(&device, "device", "", "Device name sent with pushes (or DAYMA_DEVICE).")

	addSyncLogin(cmd, &server, &token)
	addSyncPush(cmd, &server, &token, &device)
	addSyncPull(cmd, &server, &token)

	topLevel.AddCommand(cmd)
}

func addSyncLogin(topLevel *cobra.Command, server, token *string) {
	var email, password string
	var register bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token for push and pull.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return errors.New("requires --email and --password")
			}

			s := loadSyncSettings(*server, *token, "")
			client := syncclient.New(s.Server, "")

			ctx := cmd.Context()
			if register {
				if err := client.Register(ctx, email, password); err != nil {
					return err
				}
			}

			t, err := client.Login(ctx, email, password)
			if err != nil {
				return err
			}

			fmt.Println(t)
			fmt.Fprintln(os.Stderr, "\nexport DAYMA_TOKEN to use it:")
			fmt.Fprintf(os.Stderr, "  export DAYMA_TOKEN=%s\n", t)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email.")
	cmd.Flags().StringVar(&password, "password", "", "Account password.")
	cmd.Flags().BoolVar(&register, "register", false, "Create the account first.")

	topLevel.AddCommand(cmd)
}

func addSyncPush(topLevel *cobra.Command, server, token, device *string) {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the local document as the next snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			s := loadSyncSettings(*server, *token, *device)
			if s.Token == "" {
				return errors.New("no token, run dayma sync login first")
			}
			client := syncclient.New(s.Server, s.Token)

			ctx := cmd.Context()

			seq := 1
			latest, err := client.Pull(ctx)
			switch {
			case err == nil:
				seq = latest.Seq + 1
			case errors.Is(err, syncclient.ErrNoRemoteSnapshot):
			default:
				return err
			}

			text, err := t.Export()
			if err != nil {
				return err
			}

			pushed, err := client.Push(ctx, s.Device, seq, []byte(text))
			if err != nil {
				return err
			}

			fmt.Printf("Pushed snapshot %d from %s.\n", pushed.Seq, pushed.DeviceID)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addSyncPull(topLevel *cobra.Command, server, token *string) {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the local document with the newest snapshot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTracker()
			if err != nil {
				return err
			}

			s := loadSyncSettings(*server, *token, "")
			if s.Token == "" {
				return errors.New("no token, run dayma sync login first")
			}
			client := syncclient.New(s.Server, s.Token)

			latest, err := client.Pull(cmd.Context())
			if err != nil {
				return err
			}

			if err := t.Import(string(latest.Payload)); err != nil {
				return err
			}

			fmt.Printf("Pulled snapshot %d from %s.\n", latest.Seq, latest.DeviceID)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
