package gate

// promptTemplate is the blocking password prompt. It has no close control;
// the only way past it is a correct submission.
const promptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="robots" content="noindex, nofollow">
  <title>Protected preview | {{.SiteName}}</title>
  <style>
    body { margin: 0; font-family: system-ui, sans-serif; background: #0f172a; }
    .gate-backdrop { position: fixed; inset: 0; display: flex; align-items: center; justify-content: center; }
    .gate-modal { background: #fff; border-radius: 12px; padding: 32px; width: 100%; max-width: 380px; box-shadow: 0 20px 50px rgba(0,0,0,.35); }
    .gate-modal h1 { margin: 0 0 8px; font-size: 1.25rem; color: #0f172a; }
    .gate-modal p { margin: 0 0 20px; color: #475569; font-size: .95rem; }
    .gate-modal input { width: 100%; box-sizing: border-box; padding: 10px 12px; border: 1px solid #cbd5e1; border-radius: 8px; font-size: 1rem; }
    .gate-modal input[aria-invalid="true"] { border-color: #dc2626; }
    .gate-error { color: #dc2626; font-size: .875rem; margin: 8px 0 0; }
    .gate-modal button { margin-top: 16px; width: 100%; padding: 10px; border: 0; border-radius: 8px; background: #0f766e; color: #fff; font-size: 1rem; cursor: pointer; }
  </style>
</head>
<body>
  <div class="gate-backdrop">
    <form class="gate-modal" role="dialog" aria-modal="true" aria-labelledby="gate-title" method="post" action="{{.Action}}">
      <h1 id="gate-title">This preview is password protected</h1>
      <p>Enter the password you were given to continue to {{.SiteName}}.</p>
      <input type="password" name="gate_secret" autocomplete="current-password" autofocus required{{if .Mismatch}} aria-invalid="true" aria-describedby="gate-error"{{end}}>
      {{if .Mismatch}}<p class="gate-error" id="gate-error" role="alert">Incorrect password</p>{{end}}
      <button type="submit">Continue</button>
    </form>
  </div>
</body>
</html>`
