// hireloopctl is the administrative CLI: account bootstrap and idempotent
// data repairs that operators run against the live database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/database"
	"github.com/hireloop/hireloop/pkg/notify"
	"github.com/hireloop/hireloop/pkg/services"
	"github.com/hireloop/hireloop/pkg/token"
	"github.com/hireloop/hireloop/pkg/version"
)

func main() {
	root := &cobra.Command{
		Use:           "hireloopctl",
		Short:         "Hireloop administrative commands",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var envFile string
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the environment file")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Missing env file is fine; the environment may already be set.
		_ = godotenv.Load(envFile)
	}

	root.AddCommand(
		createAdminCmd(),
		syncCompaniesCmd(),
		fixInterviewTimesCmd(),
		sendInterviewEmailsCmd(),
		fixQuestionRefsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect opens the database client shared by every subcommand.
func connect(ctx context.Context) (*database.Client, error) {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return database.NewClient(ctx, dbConfig)
}

// interviewService wires the full interview service for repair commands.
func interviewService(client *database.Client) (*services.InterviewService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	zone, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid interview timezone %q: %w", cfg.Schedule.Timezone, err)
	}
	links := services.NewLinkService(client.Client, token.NewCodec(cfg.Link.Secret),
		cfg.Link.EarlyGrace, cfg.Link.LateGrace)
	return services.NewInterviewService(client.Client, links, zone,
		notify.NewService(cfg.Notify), cfg.Server.BaseURL, cfg.Server.IsDevelopment()), nil
}

func createAdminCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update an administrative user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			created, err := services.NewAdminService(client.Client).
				CreateAdmin(ctx, username, email, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Printf("admin %q created\n", username)
			} else {
				fmt.Printf("admin %q updated\n", username)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username")
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (min 8 characters)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func syncCompaniesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-companies-from-jobs",
		Short: "Create Company rows from legacy job company names and link jobs to them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			linked, err := services.NewJobService(client.Client).SyncCompaniesFromJobs(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("linked %d jobs\n", linked)
			return nil
		},
	}
}

func fixInterviewTimesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix-existing-interview-times",
		Short: "Recompute interview UTC windows from their bound slots (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			svc, err := interviewService(client)
			if err != nil {
				return err
			}
			fixed, err := svc.FixInterviewTimes(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("fixed %d interviews\n", fixed)
			return nil
		},
	}
}

func sendInterviewEmailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-interview-emails",
		Short: "Send invites for upcoming scheduled interviews that have none recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			svc, err := interviewService(client)
			if err != nil {
				return err
			}
			sent, err := svc.SendPendingInvites(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("sent %d invites\n", sent)
			return nil
		},
	}
}

func fixQuestionRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix-question-refs",
		Short: "Rewrite legacy integer code-submission question refs to question UUIDs (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := connect(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			rewritten, err := services.NewCodeSubmissionService(client.Client).FixQuestionRefs(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("rewrote %d submissions\n", rewritten)
			return nil
		},
	}
}
