package web

// layoutTemplate wraps every page. Pages define the "content" block.
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteName}}</title>
  {{if .Canonical}}<link rel="canonical" href="{{.Canonical}}">{{end}}
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="site-header">
    <a class="brand" href="/">{{.SiteName}}</a>
    <nav class="site-nav">
      {{range .Segments}}<a href="/partners/{{.Slug}}">{{.Title}}</a>{{end}}
      <a class="nav-cta" href="/join">Join the initiative</a>
    </nav>
  </header>
  <main>
    {{template "content" .}}
  </main>
  <footer class="site-footer">
    <nav>
      {{range .Legal}}<a href="/legal/{{.Slug}}">{{.Title}}</a>{{end}}
    </nav>
    <p>&copy; {{.Year}} {{.SiteName}}. Not for medical emergencies; call 911.</p>
  </footer>
</body>
</html>`

const homeTemplate = `{{define "content"}}{{with .Data}}
<section class="hero">
  <p class="eyebrow">{{.Home.Hero.Eyebrow}}</p>
  <h1>{{.Home.Hero.Headline}}</h1>
  <p class="subhead">{{.Home.Hero.Subhead}}</p>
  <div class="hero-actions">
    <a class="button primary" href="{{.Home.Hero.Primary.Href}}">{{.Home.Hero.Primary.Label}}</a>
    <a class="button secondary" href="{{.Home.Hero.Secondary.Href}}">{{.Home.Hero.Secondary.Label}}</a>
  </div>
</section>
<section class="stats">
  {{range .Home.Stats}}<div class="stat"><strong>{{.Value}}</strong><span>{{.Label}}</span></div>{{end}}
</section>
<section class="steps" id="how-it-works">
  <h2>How it works</h2>
  <ol>
    {{range .Home.Steps}}<li><h3>{{.Title}}</h3><p>{{.Body}}</p></li>{{end}}
  </ol>
</section>
{{if .Featured}}<section class="featured">
  <h2>Meet one of our specialists</h2>
  {{template "doctor-card" .Featured}}
</section>{{end}}
<section class="segments">
  <h2>Who we work with</h2>
  <ul>
    {{range .Segments}}<li><a href="/partners/{{.Slug}}"><h3>{{.Title}}</h3><p>{{.Hero.Headline}}</p></a></li>{{end}}
  </ul>
</section>
<blockquote class="testimonial">
  <p>{{.Home.Testimonial}}</p>
  <cite>{{.Home.TestimonialBy}}</cite>
</blockquote>
{{end}}{{end}}`

const segmentTemplate = `{{define "content"}}{{with .Data}}
<section class="hero">
  <p class="eyebrow">{{.Hero.Eyebrow}}</p>
  <h1>{{.Hero.Headline}}</h1>
  <p class="subhead">{{.Hero.Subhead}}</p>
</section>
<section class="benefits">
  <ul>
    {{range .Benefits}}<li>{{.}}</li>{{end}}
  </ul>
  <a class="button primary" href="{{.CTA.Href}}">{{.CTA.Label}}</a>
</section>
{{end}}{{end}}`

const legalIndexTemplate = `{{define "content"}}
<section class="legal-index">
  <h1>Legal</h1>
  <ul>
    {{range .Legal}}<li><a href="/legal/{{.Slug}}">{{.Title}}</a></li>{{end}}
  </ul>
</section>
{{end}}`

const legalDocTemplate = `{{define "content"}}
<article class="legal-doc">
  {{.Data.HTML}}
</article>
{{end}}`

// doctorCardTemplate is shared by the home page and the profile page.
const doctorCardTemplate = `{{define "doctor-card"}}
<div class="doctor-card">
  {{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="Portrait of Dr. {{.Name}}" loading="lazy">{{end}}
  <div class="doctor-body">
    <h3>Dr. {{.Name}}{{if .Credentials}}, {{.Credentials}}{{end}}</h3>
    <p class="specialty">{{.Specialty}}</p>
    <p class="institution">{{.Institution}}</p>
    {{if .YearsExperience}}<p class="experience">{{.YearsExperience}} years in practice</p>{{end}}
    {{if .Languages}}<p class="languages">Speaks {{join .Languages ", "}}</p>{{end}}
    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
  </div>
</div>
{{end}}`

const doctorTemplate = `{{define "content"}}
<section class="doctor-profile">
  {{template "doctor-card" .Data}}
  <a class="button primary" href="/join">Request a review</a>
</section>
{{end}}`

const joinTemplate = `{{define "content"}}{{with .Data}}
<section class="join">
  <h1>Join the initiative</h1>
  <p>Tell us about your organization and we will be in touch within two business days.</p>
  {{if .Error}}<p class="form-error" role="alert">{{.Error}}</p>{{end}}
  <form method="post" action="/join">
    <label>Full name <input type="text" name="name" value="{{.Submission.Name}}" required></label>
    <label>Work email <input type="email" name="email" value="{{.Submission.Email}}" required></label>
    <label>Organization <input type="text" name="organization" value="{{.Submission.Organization}}"></label>
    <label>Role <input type="text" name="role" value="{{.Submission.Role}}"></label>
    <label>Message <textarea name="message" rows="4">{{.Submission.Message}}</textarea></label>
    <fieldset class="consent">
      <legend>Before you submit</legend>
      <label><input type="checkbox" name="accept_terms"{{if .Consent.AcceptTerms}} checked{{end}}> I agree to the <a href="/legal/terms-of-service">Terms of Service</a></label>
      <label><input type="checkbox" name="accept_privacy"{{if .Consent.AcceptPrivacy}} checked{{end}}> I have read the <a href="/legal/privacy-policy">Privacy Policy</a></label>
      <label><input type="checkbox" name="accept_telehealth"{{if .Consent.AcceptTelehealth}} checked{{end}}> I understand a second opinion is not emergency care</label>
    </fieldset>
    <button type="submit" class="button primary">Submit</button>
  </form>
</section>
{{end}}{{end}}`

const thanksTemplate = `{{define "content"}}
<section class="thanks">
  <h1>Thank you</h1>
  <p>We received your details and will be in touch soon.</p>
  <a class="button secondary" href="/">Back to home</a>
</section>
{{end}}`

const notFoundTemplate = `{{define "content"}}
<section class="not-found">
  <h1>Page not found</h1>
  <p>The page you were looking for does not exist.</p>
  <a class="button secondary" href="/">Back to home</a>
</section>
{{end}}`

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `:root {
  --ink: #0f172a;
  --muted: #475569;
  --brand: #0f766e;
  --brand-dark: #115e59;
  --surface: #f8fafc;
  --border: #e2e8f0;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; color: var(--ink); line-height: 1.6; }
a { color: var(--brand); }
main { max-width: 1080px; margin: 0 auto; padding: 0 24px 64px; }
.site-header { display: flex; align-items: center; justify-content: space-between; padding: 16px 24px; border-bottom: 1px solid var(--border); }
.brand { font-weight: 700; font-size: 1.2rem; text-decoration: none; color: var(--ink); }
.site-nav a { margin-left: 20px; text-decoration: none; color: var(--muted); }
.site-nav .nav-cta { color: var(--brand); font-weight: 600; }
.hero { padding: 72px 0 48px; }
.hero h1 { font-size: 2.75rem; line-height: 1.15; margin: 8px 0 16px; }
.eyebrow { text-transform: uppercase; letter-spacing: .08em; font-size: .8rem; color: var(--brand); font-weight: 600; }
.subhead { font-size: 1.2rem; color: var(--muted); max-width: 640px; }
.button { display: inline-block; padding: 12px 22px; border-radius: 8px; text-decoration: none; font-weight: 600; border: 0; cursor: pointer; font-size: 1rem; }
.button.primary { background: var(--brand); color: #fff; }
.button.primary:hover { background: var(--brand-dark); }
.button.secondary { border: 1px solid var(--border); color: var(--ink); }
.hero-actions .button { margin-right: 12px; }
.stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; }
.stat { background: var(--surface); border-radius: 12px; padding: 24px; }
.stat strong { display: block; font-size: 2rem; }
.stat span { color: var(--muted); }
.steps ol { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; padding: 0; list-style: none; }
.segments ul { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; padding: 0; list-style: none; }
.segments a { display: block; padding: 20px; border: 1px solid var(--border); border-radius: 12px; text-decoration: none; color: var(--ink); }
.benefits li { margin-bottom: 8px; }
.doctor-card { display: flex; gap: 20px; padding: 20px; border: 1px solid var(--border); border-radius: 12px; max-width: 640px; }
.doctor-card img { width: 120px; height: 120px; border-radius: 50%; object-fit: cover; }
.doctor-card h3 { margin: 0; }
.specialty { color: var(--brand); font-weight: 600; margin: 4px 0; }
.institution, .experience, .languages { color: var(--muted); margin: 2px 0; }
.testimonial { margin: 48px 0; padding: 24px; border-left: 4px solid var(--brand); background: var(--surface); }
.legal-doc { max-width: 760px; }
.legal-doc table { border-collapse: collapse; }
.legal-doc th, .legal-doc td { border: 1px solid var(--border); padding: 6px 10px; text-align: left; }
.join form { display: grid; gap: 14px; max-width: 560px; }
.join label { display: grid; gap: 4px; }
.join input[type=text], .join input[type=email], .join textarea { padding: 10px; border: 1px solid var(--border); border-radius: 8px; font: inherit; }
.consent { border: 1px solid var(--border); border-radius: 8px; padding: 12px 16px; }
.consent label { display: flex; gap: 8px; align-items: baseline; }
.form-error { color: #dc2626; }
.site-footer { border-top: 1px solid var(--border); padding: 24px; color: var(--muted); font-size: .9rem; }
.site-footer a { margin-right: 16px; color: var(--muted); }
@media (max-width: 640px) {
  .hero h1 { font-size: 2rem; }
  .site-nav a:not(.nav-cta) { display: none; }
  .doctor-card { flex-direction: column; }
}
`
