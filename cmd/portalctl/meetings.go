package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	meetingsCmd := &cobra.Command{Use: "meetings", Short: "Meeting operations"}

	// schedule
	var title, description, date, attendees string
	var duration int
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a meeting through the provisioning pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			payload := map[string]interface{}{
				"title":       title,
				"description": description,
				"date":        date,
				"duration":    duration,
				"user_id":     userFlag,
				"attendees":   []string{},
			}
			if attendees != "" {
				payload["attendees"] = strings.Split(attendees, ",")
			}
			resp, err := client().R().SetBody(payload).Post("/api/meetings/schedule")
			return printResponse(resp, err)
		},
	}
	scheduleCmd.Flags().StringVarP(&title, "title", "t", "", "Meeting title (required)")
	scheduleCmd.Flags().StringVarP(&description, "description", "d", "", "Meeting description")
	scheduleCmd.Flags().StringVar(&date, "date", "", "Start time, RFC 3339 (required)")
	scheduleCmd.Flags().IntVar(&duration, "duration", 30, "Duration in minutes")
	scheduleCmd.Flags().StringVar(&attendees, "attendees", "", "Comma-separated attendee emails")
	_ = scheduleCmd.MarkFlagRequired("title")
	_ = scheduleCmd.MarkFlagRequired("date")
	meetingsCmd.AddCommand(scheduleCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			resp, err := client().R().Get(fmt.Sprintf("/api/users/%s/meetings", userFlag))
			return printResponse(resp, err)
		},
	}
	meetingsCmd.AddCommand(listCmd)

	rootCmd.AddCommand(meetingsCmd)
}
