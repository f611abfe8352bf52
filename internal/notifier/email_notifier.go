package notifier

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	config "github.com/LiuBangJie/online-ordering/configs"
	"github.com/LiuBangJie/online-ordering/internal/models"
)

// SendReceiptEmail mails an order receipt to the member who placed it. It is
// called in a fire-and-forget goroutine after the order is persisted; a
// failure is logged and never affects the order itself.
func SendReceiptEmail(cfg config.EmailConfig, recipientEmail, customerName string, order *models.Order) error {
	if cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured in environment variables")
	}
	if recipientEmail == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		log.Printf("Failed to load AWS SDK config for email to %s (order %s): %v", recipientEmail, order.ID, err)
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	subject := fmt.Sprintf("Order %s Confirmation - Thank You!", order.ID)

	items, _ := order.LineItems()
	var lines []string
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s x%d - %d", item.Name, item.Quantity, item.Price*item.Quantity))
	}
	itemList := strings.Join(lines, "\n")
	totalStr := strconv.Itoa(order.Total)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>Your order %s for table %s has been received.</p>
            <pre>%s</pre>
            <p><strong>Total: %s</strong></p>
            <p>We'll start preparing it shortly.</p>
        </body>
        </html>`, customerName, order.ID, order.TableNumber, itemList, totalStr)

	bodyText := fmt.Sprintf(
		"Dear %s,\n\nYour order %s for table %s has been received.\n\n%s\n\nTotal: %s\n\nWe'll start preparing it shortly.",
		customerName, order.ID, order.TableNumber, itemList, totalStr)

	input := &ses.SendEmailInput{
		Source: aws.String(cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{recipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("Failed to send receipt email for order %s to %s: %v", order.ID, recipientEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Receipt email sent for order %s to %s", order.ID, recipientEmail)
	return nil
}
