// Interactive focus-timer client. Runs a pushup-break pomodoro loop in
// the terminal and submits the session's pushup total to the API as a
// timer-session entry when stopped.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pushlog/pushlog/internal/focustimer"
)

type options struct {
	apiURL    string
	token     string
	statePath string
	work      int
	rest      int
	target    int
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pushlog-timer.json"
	}
	return filepath.Join(home, ".pushlog", "timer.json")
}

func parseOptions() options {
	var opts options
	flag.StringVar(&opts.apiURL, "api", os.Getenv("PUSHLOG_API_URL"), "base API url, e.g. http://localhost:8080")
	flag.StringVar(&opts.token, "token", os.Getenv("PUSHLOG_TOKEN"), "bearer token from /auth/login")
	flag.StringVar(&opts.statePath, "state", defaultStatePath(), "path of the session state file")
	flag.IntVar(&opts.work, "work", 25, "work interval in minutes")
	flag.IntVar(&opts.rest, "break", 5, "break interval in minutes")
	flag.IntVar(&opts.target, "target", 0, "pushup target per break, 0 for none")
	flag.Parse()
	return opts
}

// command is one parsed line of user input, delivered into the ticker
// loop so the machine is only ever touched from a single goroutine.
type command struct {
	verb string
	arg  int
}

func readCommands(out chan<- command) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := command{verb: fields[0]}
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("expected a number, got:", fields[1])
				continue
			}
			cmd.arg = n
		}
		out <- cmd
	}
	close(out)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func printStatus(m *focustimer.Machine) {
	sess, ok := m.Session()
	if !ok {
		fmt.Println("idle; no active session")
		return
	}
	fmt.Printf("[%s] %s remaining | cycle %d | %d pushups logged\n",
		sess.Phase, formatClock(sess.TimeRemaining), sess.CurrentCycle, sess.TotalPushups)
}

func submitSummary(opts options, summary *focustimer.Summary) error {
	if opts.apiURL == "" || opts.token == "" {
		return errors.New("api url or token not configured, use -api and -token")
	}
	if summary.TotalPushups < 1 {
		return errors.New("nothing to submit: no pushups logged")
	}
	body, err := sonic.ConfigDefault.Marshal(map[string]any{
		"amount": summary.TotalPushups,
		"source": "timer-session",
	})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(opts.apiURL, "/")+"/api/v1/entries", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+opts.token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("api rejected the entry: %s", resp.Status)
	}
	var result struct {
		EntryPoints int `json:"entry_points"`
		Evaluation  struct {
			NewBadges []struct {
				Name string `json:"name"`
			} `json:"new_badges"`
		} `json:"evaluation"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	fmt.Printf("submitted %d pushups, +%d points\n", summary.TotalPushups, result.EntryPoints)
	for _, badge := range result.Evaluation.NewBadges {
		fmt.Println("badge unlocked:", badge.Name)
	}
	return nil
}

func handleStop(opts options, m *focustimer.Machine) {
	summary, err := m.Stop()
	if err != nil {
		fmt.Println("stop failed:", err)
		return
	}
	fmt.Printf("session done: %d cycles, %s worked, %s rested, %d pushups\n",
		summary.CyclesCompleted,
		formatClock(summary.WorkSeconds),
		formatClock(summary.BreakSeconds),
		summary.TotalPushups)
	if err := submitSummary(opts, summary); err != nil {
		fmt.Println("not submitted:", err)
	}
}

func runLoop(opts options, m *focustimer.Machine) {
	commands := make(chan command)
	go readCommands(commands)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	fmt.Println("commands: s start | p pause | r resume | a <n> add pushups | i status | x stop & submit | d discard | q quit")
	for {
		select {
		case <-ticker.C:
			before := m.Phase()
			if err := m.Tick(); err != nil {
				log.Println("tick error:", err)
			}
			after := m.Phase()
			if before == focustimer.PhaseWork && after == focustimer.PhaseBreak {
				fmt.Println("break time: do your pushups, log them with a <n>")
			}
			if before == focustimer.PhaseBreak && after == focustimer.PhaseWork {
				fmt.Println("back to work")
			}
		case cmd, ok := <-commands:
			if !ok {
				return
			}
			switch cmd.verb {
			case "s":
				err := m.Start(focustimer.Settings{
					WorkMinutes:  opts.work,
					BreakMinutes: opts.rest,
					PushupTarget: opts.target,
				})
				if err != nil {
					fmt.Println("start failed:", err)
					continue
				}
				fmt.Printf("started: %dm work / %dm break\n", opts.work, opts.rest)
			case "p":
				if err := m.Pause(); err != nil {
					fmt.Println("pause failed:", err)
				}
			case "r":
				if err := m.Resume(); err != nil {
					fmt.Println("resume failed:", err)
				}
			case "a":
				if err := m.AddPushups(cmd.arg); err != nil {
					fmt.Println("couldn't add pushups:", err)
					continue
				}
				printStatus(m)
			case "i":
				printStatus(m)
			case "x":
				handleStop(opts, m)
			case "d":
				if err := m.Discard(); err != nil {
					fmt.Println("discard failed:", err)
					continue
				}
				fmt.Println("session discarded")
			case "q":
				return
			default:
				fmt.Println("unknown command:", cmd.verb)
			}
		}
	}
}

func main() {
	opts := parseOptions()
	machine := focustimer.New(focustimer.NewFileStore(opts.statePath))
	if err := machine.Restore(); err != nil {
		log.Println("couldn't restore previous session:", err)
	}
	if machine.Phase() == focustimer.PhasePaused {
		fmt.Println("restored a paused session, r to resume")
		printStatus(machine)
	}
	runLoop(opts, machine)
}
