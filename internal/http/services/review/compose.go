package review

import (
	"fmt"
	"html"
	"strings"

	"github.com/dropDatabas3/reviewrelay/internal/email"
	dto "github.com/dropDatabas3/reviewrelay/internal/http/dto/review"
)

// Subject arma el asunto: "New review from <name> (<rating|N/A> stars)".
func Subject(req dto.SendReviewRequest) string {
	return fmt.Sprintf("New review from %s (%s stars)", req.Name, req.Rating)
}

// TextBody arma el cuerpo en texto plano. El mensaje va tal cual.
func TextBody(req dto.SendReviewRequest) string {
	return fmt.Sprintf("New review submitted\n\nName: %s\nEmail: %s\nRating: %s\n\nMessage:\n%s",
		req.Name, req.Email, req.Rating, req.Message)
}

// HTMLBody arma el cuerpo HTML. Los valores se escapan y cada \n del mensaje pasa a <br/>.
func HTMLBody(req dto.SendReviewRequest) string {
	msg := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br/>")
	return fmt.Sprintf(`<p>New review submitted</p>
<p><strong>Name:</strong> %s<br/>
<strong>Email:</strong> %s<br/>
<strong>Rating:</strong> %s</p>
<p><strong>Message:</strong><br/>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Rating.String()),
		msg,
	)
}

// ComposeMessage arma el email saliente. Es determinístico dado req, from y to.
func ComposeMessage(req dto.SendReviewRequest, from, to string) email.Message {
	return email.Message{
		From:    from,
		To:      to,
		Subject: Subject(req),
		Text:    TextBody(req),
		HTML:    HTMLBody(req),
	}
}
