package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/Sauhard04/propertyDekho/models"
)

// Mailer dispatches enquiry and purchase notifications. Delivery is
// best-effort: callers decide whether a failed send aborts the request.
type Mailer interface {
	SendEnquiry(property *models.Property, owner *models.User, enquiry *models.EnquiryRequest) error
	SendPurchaseRequest(property *models.Property, owner, buyer *models.User, txn *models.Transaction, enquiry *models.EnquiryRequest) error
}

type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewSMTPMailer(host string, port int, user, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, password: password}
}

func (m *SMTPMailer) send(msgs ...*gomail.Message) error {
	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msgs...)
}

func (m *SMTPMailer) SendEnquiry(property *models.Property, owner *models.User, enquiry *models.EnquiryRequest) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.user, fmt.Sprintf("%s (via PropertyDeal)", enquiry.Name))
	msg.SetHeader("To", owner.Email)
	msg.SetHeader("Reply-To", enquiry.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Enquiry for %s", property.Title))
	msg.SetBody("text/html", fmt.Sprintf(`
		<h2>New Property Enquiry</h2>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Phone:</strong> %s</p>

		<h3>Property Details:</h3>
		<p><strong>Title:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Price:</strong> ₹%.0f</p>
		<p><strong>Reference ID:</strong> %s</p>

		<h3>Message:</h3>
		<p>%s</p>

		<p>---</p>
		<p>This enquiry was sent through PropertyDeal. Please reply directly to %s using the email above.</p>`,
		enquiry.Name, enquiry.Email, enquiry.Phone,
		property.Title, property.Location, property.Price, property.ID.Hex(),
		enquiry.Message, enquiry.Name))

	return m.send(msg)
}

func (m *SMTPMailer) SendPurchaseRequest(property *models.Property, owner, buyer *models.User, txn *models.Transaction, enquiry *models.EnquiryRequest) error {
	buyerMsg := gomail.NewMessage()
	buyerMsg.SetAddressHeader("From", m.user, "PropertyDeal")
	buyerMsg.SetHeader("To", buyer.Email)
	buyerMsg.SetHeader("Subject", fmt.Sprintf("Purchase Request Confirmation - %s", property.Title))
	buyerMsg.SetBody("text/html", fmt.Sprintf(`
		<h2>Purchase Request Confirmation</h2>
		<p>Thank you for your interest in purchasing the property:</p>

		<h3>Property Details:</h3>
		<p><strong>Title:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Price:</strong> ₹%.0f</p>
		<p><strong>Transaction ID:</strong> %s</p>

		<h3>Seller's Contact Information:</h3>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>

		<p>Please contact the seller directly to proceed with the purchase.</p>
		<p>---</p>
		<p>This is an automated message from PropertyDeal.</p>`,
		property.Title, property.Location, property.Price, txn.ID.Hex(),
		owner.Name, owner.Email, orDefault(owner.Phone, "Not provided")))

	sellerMsg := gomail.NewMessage()
	sellerMsg.SetAddressHeader("From", m.user, "PropertyDeal")
	sellerMsg.SetHeader("To", owner.Email)
	sellerMsg.SetHeader("Subject", fmt.Sprintf("New Purchase Request - %s", property.Title))
	sellerMsg.SetBody("text/html", fmt.Sprintf(`
		<h2>New Purchase Request</h2>
		<p>You have received a purchase request for your property:</p>

		<h3>Property Details:</h3>
		<p><strong>Title:</strong> %s</p>
		<p><strong>Location:</strong> %s</p>
		<p><strong>Price:</strong> ₹%.0f</p>

		<h3>Buyer's Information:</h3>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Message:</strong> %s</p>

		<p>Please contact the buyer to proceed with the sale.</p>
		<p>---</p>
		<p>This is an automated message from PropertyDeal.</p>`,
		property.Title, property.Location, property.Price,
		buyer.Name, buyer.Email,
		orDefault(enquiry.Phone, "Not provided"), orDefault(enquiry.Message, "No additional message")))

	return m.send(buyerMsg, sellerMsg)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
