package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
)

var (
	app       = kingpin.New("showdesk", "Event production scheduling tool")
	serverURL = app.Flag("server", "Server base URL").Default("http://localhost:3200").Envar("SHOWDESK_SERVER_URL").String()
	apiKey    = app.Flag("api-key", "API key").Envar("SHOWDESK_API_KEY").String()

	eventsCmd     = app.Command("events", "Event commands")
	eventsListCmd = eventsCmd.Command("list", "List all events")

	eventsCreateCmd   = eventsCmd.Command("create", "Create an event")
	eventsCreateTitle = eventsCreateCmd.Arg("title", "Event title").Required().String()
	eventsCreateDate  = eventsCreateCmd.Arg("date", "Event date (YYYY-MM-DD)").Required().String()
	eventsCreateVenue = eventsCreateCmd.Flag("venue", "Venue city").String()

	tasksCmd     = app.Command("tasks", "Task commands")
	tasksListCmd = tasksCmd.Command("list", "List an event's tasks")
	tasksListID  = tasksListCmd.Arg("event-id", "Event ID").Required().String()

	generateCmd = app.Command("generate", "Generate standard tasks for an event")
	generateID  = generateCmd.Arg("event-id", "Event ID").Required().String()

	previewCmd = app.Command("preview", "Preview generated tasks without saving")
	previewID  = previewCmd.Arg("event-id", "Event ID").Required().String()

	remindersCmd = app.Command("reminders", "Show due-date reminders")

	statsCmd = app.Command("stats", "Show dashboard statistics")
)

type eventView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Venue  string `json:"venue"`
	Status string `json:"status"`
}

type taskView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
	IsAutomated bool   `json:"isAutomated"`
	IsCritical  bool   `json:"isCritical"`
}

type reminderView struct {
	TaskID  string `json:"taskId"`
	EventID string `json:"eventId"`
	Message string `json:"message"`
	Urgency string `json:"urgency"`
	DueDate string `json:"dueDate"`
}

type statsView struct {
	TotalAutomatedTasks     int `json:"totalAutomatedTasks"`
	CompletedAutomatedTasks int `json:"completedAutomatedTasks"`
	PendingAutomatedTasks   int `json:"pendingAutomatedTasks"`
	UpcomingEvents          int `json:"upcomingEvents"`
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch command {
	case eventsListCmd.FullCommand():
		err = handleEventsList()
	case eventsCreateCmd.FullCommand():
		err = handleEventsCreate(*eventsCreateTitle, *eventsCreateDate, *eventsCreateVenue)
	case tasksListCmd.FullCommand():
		err = handleTasksList(*tasksListID)
	case generateCmd.FullCommand():
		err = handleGenerate(*generateID)
	case previewCmd.FullCommand():
		err = handlePreview(*previewID)
	case remindersCmd.FullCommand():
		err = handleReminders()
	case statsCmd.FullCommand():
		err = handleStats()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func request(method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, *serverURL+"/api"+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if *apiKey != "" {
		req.Header.Set("X-API-Key", *apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s (%s)", apiErr.Message, resp.Status)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func handleEventsList() error {
	var events []eventView
	if err := request(http.MethodGet, "/events", nil, &events); err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}
	for _, e := range events {
		fmt.Printf("%s  %s  %s  %s  [%s]\n",
			color.CyanString(e.ID), e.Date, color.New(color.Bold).Sprint(e.Title), e.Venue, statusColor(e.Status))
	}
	return nil
}

func handleEventsCreate(title, date, venue string) error {
	var ev eventView
	body := map[string]string{"title": title, "date": date, "venue": venue}
	if err := request(http.MethodPost, "/events", body, &ev); err != nil {
		return err
	}
	fmt.Printf("Created event %s\n", color.CyanString(ev.ID))
	return nil
}

func handleTasksList(eventID string) error {
	var tasks []taskView
	if err := request(http.MethodGet, "/events/"+eventID+"/tasks", nil, &tasks); err != nil {
		return err
	}
	printTasks(tasks)
	return nil
}

func handleGenerate(eventID string) error {
	var result struct {
		Created int `json:"created"`
	}
	if err := request(http.MethodPost, "/events/"+eventID+"/tasks/generate", nil, &result); err != nil {
		return err
	}
	if result.Created == 0 {
		fmt.Println("Tasks already generated for this event.")
		return nil
	}
	fmt.Printf("Generated %s tasks.\n", color.GreenString("%d", result.Created))
	return nil
}

func handlePreview(eventID string) error {
	var tasks []taskView
	if err := request(http.MethodGet, "/events/"+eventID+"/tasks/preview", nil, &tasks); err != nil {
		return err
	}
	printTasks(tasks)
	return nil
}

func handleReminders() error {
	var reminders []reminderView
	if err := request(http.MethodGet, "/reminders", nil, &reminders); err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Println("Nothing due.")
		return nil
	}
	for _, r := range reminders {
		fmt.Printf("%s  %s  (due %s)\n", urgencyColor(r.Urgency), r.Message, r.DueDate)
	}
	return nil
}

func handleStats() error {
	var s statsView
	if err := request(http.MethodGet, "/stats", nil, &s); err != nil {
		return err
	}
	fmt.Printf("Automated tasks:  %d total, %s completed, %s pending\n",
		s.TotalAutomatedTasks,
		color.GreenString("%d", s.CompletedAutomatedTasks),
		color.YellowString("%d", s.PendingAutomatedTasks))
	fmt.Printf("Upcoming events:  %d (next 30 days)\n", s.UpcomingEvents)
	return nil
}

func printTasks(tasks []taskView) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}
	for _, t := range tasks {
		marker := " "
		if t.IsCritical {
			marker = color.RedString("!")
		}
		fmt.Printf("%s %s  %-10s  %-9s  %s  %s\n",
			marker, t.DueDate, t.Category, t.Assignee, statusColor(t.Status), t.Title)
	}
}

func statusColor(status string) string {
	switch status {
	case "completed", "confirmed":
		return color.GreenString(status)
	case "in_progress":
		return color.YellowString(status)
	case "blocked", "cancelled":
		return color.RedString(status)
	default:
		return status
	}
}

func urgencyColor(urgency string) string {
	switch urgency {
	case "high":
		return color.RedString("%-6s", urgency)
	case "medium":
		return color.YellowString("%-6s", urgency)
	default:
		return color.New(color.Faint).Sprintf("%-6s", urgency)
	}
}
