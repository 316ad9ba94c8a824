package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/sweeney/qr-monitor/internal/stats"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"truncate": func(s string) string {
		if len(s) > 40 {
			return s[:40] + "..."
		}
		return s
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Monitor</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.opened { color: green; font-weight: bold; }
.detected { color: #888; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>QR Monitor</h1>

<h2>Counters</h2>
<table>
<tr><th>Frames observed</th><td>{{.Counts.FramesObserved}}</td></tr>
<tr><th>Detections seen</th><td>{{.Counts.DetectionsSeen}}</td></tr>
<tr><th>Detections accepted</th><td>{{.Counts.DetectionsAccepted}}</td></tr>
<tr><th>Events published</th><td>{{.Counts.EventsPublished}}</td></tr>
<tr><th>Events dropped</th><td>{{.Counts.EventsDropped}}</td></tr>
<tr><th>Cooldown entries</th><td>{{.WindowSize}}</td></tr>
<tr><th>Last frame token</th><td>{{if .LastToken}}{{.LastToken}}{{else}}none{{end}}</td></tr>
</table>

{{if .Recent}}<h2>Recent Detections</h2>
<table>
<tr><th>Time</th><th>Payload</th><th>Status</th></tr>
{{range .Recent}}<tr><td>{{.Time.UTC.Format "15:04:05"}}</td><td>{{truncate .Payload}}</td><td class="{{.Status}}">{{.Status}}</td></tr>
{{end}}</table>{{end}}

<h2>Connectivity</h2>
<table>
<tr><th>Store</th><td>{{.Config.BaseURL}}</td></tr>
{{if .Config.Broker}}<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>{{end}}
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Cooldown</th><td>{{.Config.CooldownMs}}ms</td></tr>
<tr><th>Sweep</th><td>{{.Config.SweepMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>Open URLs</th><td>{{if .Config.OpenURLs}}enabled{{else}}disabled{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap stats.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		stats.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
