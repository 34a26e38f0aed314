package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/focusblock/internal/model"
	"github.com/sandeepkv93/focusblock/internal/storage"
)

func tasksCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the to-do list",
	}

	c.AddCommand(tasksListCmd(opts), tasksAddCmd(opts), tasksDoneCmd(opts))
	return c
}

func tasksListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withRepo(opts, func(repo *storage.SQLiteRepository) error {
				tasks, err := repo.ListTasks(c.Context(), storage.TaskListFilter{})
				if err != nil {
					return err
				}
				out := c.OutOrStdout()
				if len(tasks) == 0 {
					fmt.Fprintln(out, "(no tasks)")
					return nil
				}
				for _, t := range tasks {
					fmt.Fprintf(out, "%d. %s\n", t.ID, t.Text)
				}
				return nil
			})
		},
	}
}

func tasksAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withRepo(opts, func(repo *storage.SQLiteRepository) error {
				task, err := repo.CreateTask(c.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "added: %s\n", task.Text)
				return nil
			})
		},
	}
}

func tasksDoneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <text>",
		Short: "Complete (delete) every task with the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text, err := model.ParseTaskText(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return withRepo(opts, func(repo *storage.SQLiteRepository) error {
				err := repo.RemoveTask(c.Context(), model.Task{Text: text})
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("no task named %q", text)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "completed: %s\n", text)
				return nil
			})
		},
	}
}

func withRepo(opts *rootOptions, fn func(*storage.SQLiteRepository) error) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	cleanup := setupLogger(cfg)
	defer cleanup()

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer repo.Close()
	return fn(repo)
}
