package main

import (
	"fmt"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add DESCRIPTION STATUS",
		Short: "Create a task with a fresh ID",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.app.tasks.AddTask(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), task)
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task and print the removed record",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := c.app.tasks.DeleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), task)
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every task in ID order",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := c.app.tasks.GetTaskList(cmd.Context())
			if err != nil {
				return err
			}
			return c.printTasks(cmd.OutOrStdout(), tasks)
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			task, found, err := c.app.tasks.GetTaskDetails(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %s", errTaskAbsent, id)
			}
			return c.printTask(cmd.OutOrStdout(), task)
		},
	}
}

func newSetStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status ID STATUS",
		Short: "Replace the status of a task",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := c.app.tasks.UpdateTaskStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), task)
		},
	}
}

func newSetDescriptionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set-description ID DESCRIPTION",
		Short: "Replace the description of a task",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := c.app.tasks.UpdateTaskDescription(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			return c.printTask(cmd.OutOrStdout(), task)
		},
	}
}
