package notify

import "fmt"

// buildMessage renders the subject and HTML body for a notification kind
func buildMessage(kind Kind, data interface{}) (subject, body string, err error) {
	switch kind {
	case KindContact:
		d, ok := data.(ContactData)
		if !ok {
			return "", "", fmt.Errorf("notify: contact notification requires ContactData, got %T", data)
		}
		return buildContactMessage(d)
	case KindMember:
		d, ok := data.(MemberData)
		if !ok {
			return "", "", fmt.Errorf("notify: member notification requires MemberData, got %T", data)
		}
		return buildMemberMessage(d)
	case KindNewsletter:
		d, ok := data.(NewsletterData)
		if !ok {
			return "", "", fmt.Errorf("notify: newsletter notification requires NewsletterData, got %T", data)
		}
		return buildNewsletterMessage(d)
	default:
		return "", "", fmt.Errorf("notify: unknown notification kind %q", kind)
	}
}

func buildContactMessage(d ContactData) (string, string, error) {
	subject := fmt.Sprintf("[UYNM Contact] %s", d.Subject)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #1a5f2a 0%%, #2d8a3e 100%%); padding: 20px; text-align: center;">
				<h1 style="color: white; margin: 0;">New Contact Form Submission</h1>
			</div>
			<div style="padding: 30px; background: #f9f9f9;">
				<h2 style="color: #333; border-bottom: 2px solid #1a5f2a; padding-bottom: 10px;">Contact Details</h2>
				<p><strong>Name:</strong> %s %s</p>
				<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
				<p><strong>Subject:</strong> %s</p>
				<div style="background: white; padding: 15px; border-left: 4px solid #1a5f2a; margin-top: 20px;">
					<h3 style="margin-top: 0; color: #1a5f2a;">Message:</h3>
					<p style="white-space: pre-wrap;">%s</p>
				</div>
			</div>
			<div style="background: #333; color: white; padding: 15px; text-align: center; font-size: 12px;">
				<p style="margin: 0;">United Youth Nigeria Movement - Website Notification</p>
			</div>
		</div>
	`, d.FirstName, d.LastName, d.Email, d.Email, d.Subject, d.Message)

	return subject, body, nil
}

func buildMemberMessage(d MemberData) (string, string, error) {
	subject := fmt.Sprintf("[UYNM] New %s Registration: %s", d.InvolvementTrack, d.FullName)

	reason := d.Reason
	if reason == "" {
		reason = "Not provided"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #1a5f2a 0%%, #d4af37 100%%); padding: 20px; text-align: center;">
				<h1 style="color: white; margin: 0;">New Member Registration</h1>
			</div>
			<div style="padding: 30px; background: #f9f9f9;">
				<h2 style="color: #333; border-bottom: 2px solid #d4af37; padding-bottom: 10px;">Member Details</h2>
				<p><strong>Full Name:</strong> %s</p>
				<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
				<p><strong>Phone:</strong> %s</p>
				<p><strong>Location:</strong> %s</p>
				<p><strong>Involvement Track:</strong> <span style="background: #1a5f2a; color: white; padding: 3px 10px; border-radius: 15px;">%s</span></p>
				<div style="background: white; padding: 15px; border-left: 4px solid #d4af37; margin-top: 20px;">
					<h3 style="margin-top: 0; color: #1a5f2a;">Reason for Joining:</h3>
					<p style="white-space: pre-wrap;">%s</p>
				</div>
			</div>
			<div style="background: #333; color: white; padding: 15px; text-align: center; font-size: 12px;">
				<p style="margin: 0;">United Youth Nigeria Movement - Website Notification</p>
			</div>
		</div>
	`, d.FullName, d.Email, d.Email, d.Phone, d.Location, d.InvolvementTrack, reason)

	return subject, body, nil
}

func buildNewsletterMessage(d NewsletterData) (string, string, error) {
	subject := fmt.Sprintf("[UYNM Newsletter] New Subscription: %s", d.Email)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background: linear-gradient(135deg, #1a5f2a 0%%, #2d8a3e 100%%); padding: 20px; text-align: center;">
				<h1 style="color: white; margin: 0;">New Newsletter Subscription</h1>
			</div>
			<div style="padding: 30px; background: #f9f9f9;">
				<h2 style="color: #333; border-bottom: 2px solid #1a5f2a; padding-bottom: 10px;">Subscriber Details</h2>
				<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
				<div style="background: white; padding: 15px; border-left: 4px solid #1a5f2a; margin-top: 20px;">
					<p style="margin: 0; color: #666;">A new user has subscribed to the UYNM newsletter.</p>
				</div>
			</div>
			<div style="background: #333; color: white; padding: 15px; text-align: center; font-size: 12px;">
				<p style="margin: 0;">United Youth Nigeria Movement - Website Notification</p>
			</div>
		</div>
	`, d.Email, d.Email)

	return subject, body, nil
}
