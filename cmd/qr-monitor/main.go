// Command qr-monitor polls a remote frame store for camera frames,
// detects QR codes, and dispatches actions for new payloads.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/qr-monitor/internal/classify"
	"github.com/sweeney/qr-monitor/internal/dedup"
	"github.com/sweeney/qr-monitor/internal/detect"
	"github.com/sweeney/qr-monitor/internal/dispatch"
	"github.com/sweeney/qr-monitor/internal/frames"
	"github.com/sweeney/qr-monitor/internal/indicator"
	"github.com/sweeney/qr-monitor/internal/sink"
	"github.com/sweeney/qr-monitor/internal/stats"
	"github.com/sweeney/qr-monitor/internal/web"
)

func main() {
	poll := flag.Duration("poll", 500*time.Millisecond, "Frame polling interval")
	cooldown := flag.Duration("cooldown", 5*time.Second, "Suppression window for repeat payloads")
	sweepEvery := flag.Duration("sweep-every", 50*time.Second, "How often to prune stale cooldown entries")
	baseURL := flag.String("base-url", "http://127.0.0.1:8080", "Remote store base URL")
	cameraPath := flag.String("camera-path", "/camera", "Store path for camera frames")
	resultsPath := flag.String("results-path", "/qr_detections", "Store path for detection results")
	openURLs := flag.Bool("open-urls", true, "Open URL payloads in the default browser")
	sendWeb := flag.Bool("send-web", true, "POST detection events back to the store")
	broker := flag.String("broker", "", "MQTT broker address (empty to disable)")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	httpAddr := flag.String("http", ":8090", "HTTP status address (empty to disable)")
	ledPin := flag.Int("led-pin", 0, "BCM pin for the detection LED (0 to disable)")
	stdinQuit := flag.Bool("stdin-quit", false, "Quit when a line is read on stdin")

	flag.Parse()

	if err := run(*poll, *cooldown, *sweepEvery, *baseURL, *cameraPath, *resultsPath, *openURLs, *sendWeb, *broker, *heartbeat, *httpAddr, *ledPin, *stdinQuit); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(poll, cooldown, sweepEvery time.Duration, baseURL, cameraPath, resultsPath string, openURLs, sendWeb bool, broker string, heartbeat time.Duration, httpAddr string, ledPin int, stdinQuit bool) error {
	// Frame source
	source := frames.NewHTTPSource(baseURL, cameraPath)
	defer source.Close()

	detector := detect.NewZXingDetector()
	window := dedup.NewWindow(cooldown)

	// Event sinks
	var sinks []sink.Publisher
	if sendWeb {
		sinks = append(sinks, sink.NewHTTPPublisher(baseURL, resultsPath))
	}

	var systemPub sink.SystemPublisher
	var mqttStatus sink.ConnectionStatus
	if broker != "" {
		mq, err := sink.NewMQTTPublisher(broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		sinks = append(sinks, mq)
		systemPub = mq
		mqttStatus = mq
	}
	defer func() {
		for _, s := range sinks {
			s.Close()
		}
	}()

	dispatcher := dispatch.New(dispatch.BrowserOpener{}, sinks, openURLs)

	// Detection LED
	var led indicator.Output
	if ledPin != 0 {
		out, err := indicator.NewRealOutput(ledPin)
		if err != nil {
			return fmt.Errorf("init led: %w", err)
		}
		defer out.Close()
		led = out
	}

	// Status tracker (before STARTUP so snapshot is available)
	tracker := stats.NewTracker(time.Now(), stats.Config{
		PollMs:      poll.Milliseconds(),
		CooldownMs:  cooldown.Milliseconds(),
		SweepMs:     sweepEvery.Milliseconds(),
		HeartbeatMs: heartbeat.Milliseconds(),
		BaseURL:     baseURL,
		CameraPath:  cameraPath,
		ResultsPath: resultsPath,
		Broker:      broker,
		HTTPAddr:    httpAddr,
		OpenURLs:    openURLs,
		SendToWeb:   sendWeb,
	})

	// Publish startup event with full status snapshot
	if systemPub != nil {
		snap := tracker.Snapshot()
		startupEvent := sink.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: stats.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := systemPub.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP status server
	if httpAddr != "" {
		srv := web.New(httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", httpAddr)
	}

	log.Printf("started: poll=%v cooldown=%v store=%s broker=%s", poll, cooldown, baseURL, broker)

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	if stdinQuit {
		go watchStdin(sigCh)
	}

	return runLoop(source, detector, window, dispatcher, systemPub, mqttStatus, led, tracker, sweepEvery, heartbeat, time.Now, ticker.C, sigCh)
}

func runLoop(source frames.Source, detector detect.Detector, window *dedup.Window, dispatcher *dispatch.Dispatcher, systemPub sink.SystemPublisher, mqttStatus sink.ConnectionStatus, led indicator.Output, tracker *stats.Tracker, sweepEvery, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	lastSweep := startTime
	lastHeartbeat := startTime

	var counts stats.Counts
	var lastToken string
	haveToken := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			reason := "UNKNOWN"
			switch {
			case s == syscall.SIGINT:
				reason = "SIGINT"
			case s == syscall.SIGTERM:
				reason = "SIGTERM"
			case s.String() == "QUIT":
				reason = "QUIT"
			}
			if systemPub != nil {
				event := sink.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    reason,
					Retained:  true,
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					snap := tracker.Snapshot()
					event.RawPayload = stats.FormatStatusEvent(snap, "SHUTDOWN", reason)
				}
				if err := systemPub.PublishSystem(event); err != nil {
					log.Printf("failed to publish shutdown event: %v", err)
				} else {
					log.Printf("published shutdown event")
				}
			}
			fmt.Printf("frames=%d detections=%d accepted=%d published=%d dropped=%d\n",
				counts.FramesObserved, counts.DetectionsSeen, counts.DetectionsAccepted,
				counts.EventsPublished, counts.EventsDropped)
			return nil

		case <-tick:
			t := now()

			payload, token, err := source.Fetch()
			if err != nil {
				log.Printf("fetch error: %v", err)
			} else if token != "" && (!haveToken || token != lastToken) {
				lastToken = token
				haveToken = true
				counts.FramesObserved++

				if counts.FramesObserved%20 == 0 {
					log.Printf("scanning: frames=%d detections=%d accepted=%d",
						counts.FramesObserved, counts.DetectionsSeen, counts.DetectionsAccepted)
				}

				acceptedThisFrame := false
				img, err := frames.DecodePayload(payload)
				if err != nil {
					log.Printf("frame decode error: %v", err)
				} else {
					detections, err := detector.Detect(img)
					if err != nil {
						log.Printf("detect error: %v", err)
					}
					for _, det := range detections {
						counts.DetectionsSeen++
						if !window.ShouldAccept(det.Payload, t) {
							log.Printf("skipping recently seen payload: %s", payloadPrefix(det.Payload))
							continue
						}
						counts.DetectionsAccepted++
						acceptedThisFrame = true

						isURL := classify.IsActionableURL(det.Payload)
						out := dispatcher.Dispatch(det, isURL, t)
						counts.EventsPublished += out.Published
						counts.EventsDropped += len(out.PublishErrs)

						log.Printf("detection: %s status=%s url=%v", payloadPrefix(det.Payload), out.Status, isURL)
						if out.OpenErr != nil {
							log.Printf("open error: %v", out.OpenErr)
						}
						for _, perr := range out.PublishErrs {
							log.Printf("publish error: %v", perr)
						}

						if tracker != nil {
							tracker.AddDetection(stats.DetectionRecord{
								Time:      t,
								Payload:   det.Payload,
								Symbology: det.Symbology,
								Status:    out.Status,
							})
						}
					}
				}

				if led != nil {
					if err := led.Set(acceptedThisFrame); err != nil {
						log.Printf("led error: %v", err)
					}
				}
			}

			// Prune stale cooldown entries
			if sweepEvery > 0 && t.Sub(lastSweep) >= sweepEvery {
				lastSweep = t
				if removed := window.Sweep(t); removed > 0 {
					log.Printf("swept %d stale cooldown entries", removed)
				}
			}

			// Heartbeat
			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				log.Printf("heartbeat: uptime=%v frames=%d detections=%d accepted=%d",
					t.Sub(startTime).Truncate(time.Second), counts.FramesObserved,
					counts.DetectionsSeen, counts.DetectionsAccepted)

				if systemPub != nil {
					hbEvent := sink.SystemEvent{
						Timestamp: t,
						Event:     "HEARTBEAT",
					}
					if tracker != nil {
						if mqttStatus != nil {
							tracker.SetMQTTConnected(mqttStatus.IsConnected())
						}
						tracker.Update(counts, lastToken, window.Len())
						snap := tracker.Snapshot()
						hbEvent.RawPayload = stats.FormatStatusEvent(snap, "HEARTBEAT", "")
					}
					if err := systemPub.PublishSystem(hbEvent); err != nil {
						log.Printf("heartbeat publish error: %v", err)
					}
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(counts, lastToken, window.Len())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

// quitSignal lets a stdin line share the signal channel with SIGINT/SIGTERM.
type quitSignal struct{}

func (quitSignal) String() string { return "QUIT" }
func (quitSignal) Signal()        {}

// watchStdin requests shutdown when a line arrives on stdin. Used when
// the daemon runs in a foreground terminal session.
func watchStdin(sig chan<- os.Signal) {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		sig <- quitSignal{}
	}
}

// payloadPrefix shortens payloads for log lines.
func payloadPrefix(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
