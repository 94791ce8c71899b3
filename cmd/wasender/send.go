package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AroraShreshth/wasender/pkg/client"
)

var (
	sendTo       string
	sendText     string
	sendImage    string
	sendVideo    string
	sendDocument string
	sendAudio    string
	sendFileName string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message",
	Example: `  wasender send --to 15551234567 --text "hello"
  wasender send --to 15551234567 --image https://example.com/cat.jpg --text "look"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := client.MessagePayload{
			To:          sendTo,
			Text:        sendText,
			ImageURL:    sendImage,
			VideoURL:    sendVideo,
			DocumentURL: sendDocument,
			AudioURL:    sendAudio,
			FileName:    sendFileName,
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().SendMessage(ctx, payload)
		if err != nil {
			return err
		}

		fmt.Printf("Sent. message_id=%s status=%s\n", resp.Data.MessageID, resp.Data.Status)
		if resp.RateLimit != nil {
			fmt.Printf("Rate limit: %d/%d remaining, resets %s\n",
				resp.RateLimit.Remaining, resp.RateLimit.Limit,
				resp.RateLimit.ResetTime().Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient phone number or jid (required)")
	sendCmd.Flags().StringVar(&sendText, "text", "", "text body or media caption")
	sendCmd.Flags().StringVar(&sendImage, "image", "", "image URL")
	sendCmd.Flags().StringVar(&sendVideo, "video", "", "video URL")
	sendCmd.Flags().StringVar(&sendDocument, "document", "", "document URL")
	sendCmd.Flags().StringVar(&sendAudio, "audio", "", "audio URL")
	sendCmd.Flags().StringVar(&sendFileName, "filename", "", "file name shown for documents")
	sendCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(sendCmd)
}
