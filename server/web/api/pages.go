package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach_web/server/common/transport/httpresp"
)

// The marketing site is a handful of static pages rendered from one
// embedded template set, so the binary ships self-contained.

type pageData struct {
	Title  string
	Active string
}

const marketingTemplates = `
{{define "layout_top"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>{{.Title}} — Agent Outreach</title>
  <style>
    body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; margin: 0; color: #1a1a2e; }
    header { display: flex; justify-content: space-between; align-items: center; padding: 16px 48px; border-bottom: 1px solid #eee; }
    nav a { margin-left: 24px; text-decoration: none; color: #1a1a2e; }
    nav a.active { color: #4f46e5; font-weight: 600; }
    main { max-width: 880px; margin: 48px auto; padding: 0 24px; }
    h1 { font-size: 40px; }
    .cta { display: inline-block; background: #4f46e5; color: #fff; padding: 12px 28px; border-radius: 8px; text-decoration: none; }
    .tier { border: 1px solid #eee; border-radius: 12px; padding: 24px; margin: 12px 0; }
    label { display: block; margin-top: 16px; font-weight: 600; }
    input, textarea { width: 100%; padding: 10px; margin-top: 6px; border: 1px solid #ccc; border-radius: 6px; }
    button { margin-top: 20px; background: #4f46e5; color: #fff; border: 0; padding: 12px 28px; border-radius: 8px; }
    footer { text-align: center; color: #888; padding: 32px; border-top: 1px solid #eee; margin-top: 64px; }
  </style>
</head>
<body>
<header>
  <strong>Agent Outreach</strong>
  <nav>
    <a href="/" {{if eq .Active "home"}}class="active"{{end}}>Home</a>
    <a href="/features" {{if eq .Active "features"}}class="active"{{end}}>Features</a>
    <a href="/pricing" {{if eq .Active "pricing"}}class="active"{{end}}>Pricing</a>
    <a href="/about" {{if eq .Active "about"}}class="active"{{end}}>About</a>
    <a href="/contact" {{if eq .Active "contact"}}class="active"{{end}}>Contact</a>
  </nav>
</header>
<main>{{end}}

{{define "layout_bottom"}}</main>
<footer>
  <a href="/privacy">Privacy</a> · <a href="/terms">Terms</a> · © Agent Outreach
</footer>
</body>
</html>{{end}}

{{define "home"}}{{template "layout_top" .}}
<h1>Cold outreach that lands warm</h1>
<p>Personalized email sequences, automated follow-ups, and a unified inbox —
powered by AI that writes like you do.</p>
<a class="cta" href="/pricing">Start free</a>
{{template "layout_bottom" .}}{{end}}

{{define "features"}}{{template "layout_top" .}}
<h1>Features</h1>
<ul>
  <li><strong>Sequences</strong> — multi-step campaigns with per-step delays and daily send limits.</li>
  <li><strong>Templates</strong> — reusable emails with merge fields.</li>
  <li><strong>Contacts</strong> — import your whole list from a spreadsheet in one upload.</li>
  <li><strong>Calendar</strong> — every scheduled send and booked meeting, one view.</li>
  <li><strong>Unified inbox</strong> — replies threaded with the emails that earned them.</li>
</ul>
{{template "layout_bottom" .}}{{end}}

{{define "pricing"}}{{template "layout_top" .}}
<h1>Pricing</h1>
<div class="tier"><h2>Starter — $0</h2><p>1 sender, 50 emails/day, core sequences.</p></div>
<div class="tier"><h2>Growth — $49/mo</h2><p>3 senders, 500 emails/day, AI personalization.</p></div>
<div class="tier"><h2>Scale — $149/mo</h2><p>Unlimited senders, priority sending, dedicated support.</p></div>
{{template "layout_bottom" .}}{{end}}

{{define "about"}}{{template "layout_top" .}}
<h1>About us</h1>
<p>We build outreach software for teams who would rather talk to customers
than fight their tooling.</p>
{{template "layout_bottom" .}}{{end}}

{{define "contact"}}{{template "layout_top" .}}
<h1>Contact us</h1>
<form method="post" action="/contact">
  <label for="name">Name</label>
  <input id="name" name="name" required/>
  <label for="email">Email</label>
  <input id="email" name="email" type="email" required/>
  <label for="message">Message</label>
  <textarea id="message" name="message" rows="6" required></textarea>
  <button type="submit">Send</button>
</form>
{{template "layout_bottom" .}}{{end}}

{{define "contact_sent"}}{{template "layout_top" .}}
<h1>Thanks!</h1>
<p>We received your message and will get back to you shortly.</p>
{{template "layout_bottom" .}}{{end}}

{{define "privacy"}}{{template "layout_top" .}}
<h1>Privacy policy</h1>
<p>We store only what the product needs to run: your account profile, your
contacts, and your outreach content. We never sell data.</p>
{{template "layout_bottom" .}}{{end}}

{{define "terms"}}{{template "layout_top" .}}
<h1>Terms of service</h1>
<p>Use the service lawfully; respect the anti-spam rules of every region you
send to. Accounts violating them are suspended.</p>
{{template "layout_bottom" .}}{{end}}
`

// MarketingTemplates parses the embedded page set; app wiring hands it to
// gin once at startup.
func MarketingTemplates() *template.Template {
	return template.Must(template.New("marketing").Parse(marketingTemplates))
}

func (h *Handler) registerPages(r *gin.Engine) {
	page := func(name, title string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.HTML(http.StatusOK, name, pageData{Title: title, Active: name})
		}
	}
	r.GET("/", page("home", "Email outreach, on autopilot"))
	r.GET("/features", page("features", "Features"))
	r.GET("/pricing", page("pricing", "Pricing"))
	r.GET("/about", page("about", "About"))
	r.GET("/contact", page("contact", "Contact"))
	r.POST("/contact", h.submitContactForm)
	r.GET("/privacy", page("privacy", "Privacy"))
	r.GET("/terms", page("terms", "Terms"))
}

// submitContactForm forwards the marketing form to the backend. HTML-form
// validation happens in the browser; the server re-checks required fields.
func (h *Handler) submitContactForm(c *gin.Context) {
	var req struct {
		Name    string `form:"name" binding:"required"`
		Email   string `form:"email" binding:"required,email"`
		Message string `form:"message" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	if err := h.users.SubmitContactRequest(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, "contact_sent", pageData{Title: "Message sent", Active: "contact"})
}
