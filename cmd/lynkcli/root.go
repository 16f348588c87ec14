package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynkcircles/client/internal/api"
	"github.com/lynkcircles/client/internal/cache"
	"github.com/lynkcircles/client/internal/notification"
	"github.com/lynkcircles/client/internal/relationship"
	"github.com/lynkcircles/client/internal/session"
	"github.com/lynkcircles/client/pkg/config"
)

// app wires the client layers together for the duration of one command.
type app struct {
	client  *api.Client
	store   *cache.Store
	session *session.Session
	mutator *relationship.Mutator
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.ServerURL, cfg.AuthToken, api.WithTimeout(cfg.HTTPTimeout))

	sess := session.Anonymous()
	if cfg.AuthToken != "" {
		sess, err = session.FromToken(cfg.AuthToken)
		if err != nil {
			return nil, err
		}
	}

	store := cache.NewStore(client)
	return &app{
		client:  client,
		store:   store,
		session: sess,
		mutator: relationship.NewMutator(client, store, sess),
	}, nil
}

// requireAuth fails fast instead of sending a doomed request.
func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not signed in: set AUTH_TOKEN to a valid session token")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lynkcli",
		Short:         "Command-line client for the LynkCircles network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newWhoamiCmd(),
		newStatusCmd(),
		newConnectCmd(),
		newAcceptCmd(),
		newRejectCmd(),
		newDisconnectCmd(),
		newRequestsCmd(),
		newBadgesCmd(),
		newNotificationsCmd(),
	)
	return root
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			user, err := a.client.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s %s)\n", user.Username, user.FirstName, user.LastName)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <user-id>",
		Short: "Show the relationship status with another member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.store.RefreshRelationships(cmd.Context()); err != nil {
				return err
			}

			status := a.mutator.Status(args[0])
			fmt.Println(status)

			if status == relationship.StatusReceived || status == relationship.StatusPending {
				if req := relationship.PendingRequestBetween(a.session.UserID, args[0], a.store.PendingRequests()); req != nil {
					fmt.Printf("request id: %s\n", req.ID)
				}
			}
			return nil
		},
	}
}

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <user-id>",
		Short: "Send a connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, func(a *app) error {
				return a.mutator.SendRequest(cmd.Context(), args[0])
			}, "Connection request sent")
		},
	}
}

func newAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <request-id>",
		Short: "Accept a received connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, func(a *app) error {
				return a.mutator.AcceptRequest(cmd.Context(), args[0])
			}, "Connection request accepted")
		},
	}
}

func newRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a received connection request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, func(a *app) error {
				return a.mutator.RejectRequest(cmd.Context(), args[0])
			}, "Connection request rejected")
		},
	}
}

func newDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <user-id>",
		Short: "Remove an established connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd, func(a *app) error {
				return a.mutator.RemoveConnection(cmd.Context(), args[0])
			}, "Connection removed")
		},
	}
}

// runMutation refreshes the relationship collections first so the pair guard
// and status derivation work from current data.
func runMutation(cmd *cobra.Command, op func(*app) error, successMsg string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	if err := a.store.RefreshRelationships(cmd.Context()); err != nil {
		return err
	}
	if err := op(a); err != nil {
		return err
	}
	fmt.Println(successMsg)
	return nil
}

func newRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "List pending connection requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.store.RefreshPendingRequests(cmd.Context()); err != nil {
				return err
			}

			requests := a.store.PendingRequests()
			if len(requests) == 0 {
				fmt.Println("No pending requests")
				return nil
			}
			for _, req := range requests {
				direction := "outgoing to " + req.ToUserID
				if req.ToUserID == a.session.UserID {
					direction = "incoming from " + req.FromUserID
				}
				fmt.Printf("%s  %s  %s\n", req.ID, direction, req.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show the navigation badge counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.store.RefreshAll(cmd.Context()); err != nil {
				return err
			}

			badges := notification.ForViewer(a.session.UserID, a.store.Notifications(), a.store.PendingRequests())
			fmt.Printf("unread notifications: %d\n", badges.UnreadNotifications)
			fmt.Printf("pending requests:     %d\n", badges.PendingRequests)
			return nil
		},
	}
}

func newNotificationsCmd() *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if err := a.store.RefreshNotifications(cmd.Context()); err != nil {
				return err
			}

			for _, n := range a.store.Notifications() {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  %s\n", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
			}

			if markRead {
				if err := a.client.MarkAllNotificationsRead(cmd.Context()); err != nil {
					return err
				}
				return a.store.RefreshNotifications(cmd.Context())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markRead, "mark-read", false, "mark all notifications as read after listing")
	return cmd
}
