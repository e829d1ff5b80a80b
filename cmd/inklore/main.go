package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inklore/go-inklore/inklore"
	"github.com/inklore/go-inklore/internal/config"
	"github.com/inklore/go-inklore/internal/credstore"
	"github.com/inklore/go-inklore/internal/logger"
	"github.com/inklore/go-inklore/internal/ratelimit"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	opts := []inklore.Option{
		inklore.WithLogger(log),
		inklore.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		inklore.WithUserAgent(cfg.UserAgent),
	}
	if cfg.SiteBaseURL != "" {
		opts = append(opts, inklore.WithSiteBaseURL(cfg.SiteBaseURL))
	}
	if cfg.RequestLimit > 0 {
		opts = append(opts, inklore.WithThrottle(ratelimit.NewWindowThrottle(cfg.RequestLimit, cfg.RequestWindow)))
	}
	client := inklore.New(opts...)

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "login":
		err = runLogin(ctx, client, cfg, log, args)
	case "whoami":
		err = runWhoami(ctx, client, cfg, log)
	case "story":
		err = runStory(ctx, client, cfg, log, args)
	case "part":
		err = runPart(ctx, client, cfg, log, args)
	case "text":
		err = runText(ctx, client, cfg, log, args)
	case "user":
		err = runUser(ctx, client, cfg, log, args)
	case "search":
		err = runSearch(ctx, client, cfg, log, args)
	case "notifications":
		err = runNotifications(ctx, client, cfg, log)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: inklore <command> [args]

commands:
  login <username>      log in and persist the session token
  whoami                print the logged-in username
  story <id>            fetch a story (use -fields for a field selection)
  part <id>             fetch a story part
  text <id>             fetch a part's body text
  user <username>       fetch a user profile
  search <query>        search stories and users
  notifications         fetch the notification feed`)
}

func runLogin(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: inklore login <username>")
	}
	username := args[0]

	password := os.Getenv("INKLORE_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	sess, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	store, err := credstore.Open(cfg.CredstorePath, cfg.Keyphrase)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Put(sess.Username, sess.Token); err != nil {
		return err
	}
	log.Info().Str("username", sess.Username).Msg("logged in")
	return nil
}

func runWhoami(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger) error {
	sess, err := restoreSession(ctx, client, cfg, log)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("not logged in")
	}
	fmt.Println(sess.Username)
	return nil
}

func runStory(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	id, fieldNames, err := idAndFields(args, "story")
	if err != nil {
		return err
	}
	fields, err := inklore.StoryFields(fieldNames...)
	if err != nil {
		return err
	}

	tryRestoreSession(ctx, client, cfg, log)

	story, err := client.FetchStory(ctx, id, fields)
	if err != nil {
		return err
	}
	return printJSON(story.Data)
}

func runPart(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	id, fieldNames, err := idAndFields(args, "part")
	if err != nil {
		return err
	}
	fields, err := inklore.PartFields(fieldNames...)
	if err != nil {
		return err
	}

	tryRestoreSession(ctx, client, cfg, log)

	part, err := client.FetchPart(ctx, id, fields)
	if err != nil {
		return err
	}
	return printJSON(part.Data)
}

func runText(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: inklore text <part-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid part id %q", args[0])
	}

	tryRestoreSession(ctx, client, cfg, log)

	part, err := client.FetchPart(ctx, id, inklore.FieldSet{})
	if err != nil {
		return err
	}
	text, err := part.FetchText(ctx)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runUser(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: inklore user <username>")
	}

	tryRestoreSession(ctx, client, cfg, log)

	user, err := client.FetchUser(ctx, args[0], inklore.FieldSet{})
	if err != nil {
		return err
	}
	return printJSON(user.Data)
}

func runSearch(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: inklore search <query>")
	}

	tryRestoreSession(ctx, client, cfg, log)

	result, err := client.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	for _, story := range result.Stories {
		title := ""
		if story.Data.Title != nil {
			title = *story.Data.Title
		}
		fmt.Printf("story\t%d\t%s\t@%s\n", story.Data.ID, title, story.Data.User.Username)
	}
	for _, user := range result.Users {
		fmt.Printf("user\t%s\n", user.Data.Username)
	}
	return nil
}

func runNotifications(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger) error {
	sess, err := restoreSession(ctx, client, cfg, log)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("not logged in")
	}

	feed, err := client.FetchNotifications(ctx, 0, 0)
	if err != nil {
		return err
	}
	return printJSON(feed)
}

// restoreSession loads the most recent persisted token and validates it
// against the current-user endpoint.
func restoreSession(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger) (*inklore.Session, error) {
	store, err := credstore.Open(cfg.CredstorePath, cfg.Keyphrase)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	username, token, err := store.Last()
	if err == credstore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sess, err := client.LoginWithToken(ctx, token)
	if err == inklore.ErrInvalidSession {
		log.Warn().Str("username", username).Msg("persisted session expired")
		return nil, nil
	}
	return sess, err
}

// tryRestoreSession restores a session when one is available; public reads
// proceed anonymously otherwise.
func tryRestoreSession(ctx context.Context, client *inklore.Client, cfg *config.Config, log zerolog.Logger) {
	if _, err := restoreSession(ctx, client, cfg, log); err != nil {
		log.Debug().Err(err).Msg("session restore failed, continuing anonymously")
	}
}

func idAndFields(args []string, cmd string) (int, []string, error) {
	if len(args) < 1 {
		return 0, nil, fmt.Errorf("usage: inklore %s <id> [-fields a,b,c]", cmd)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid %s id %q", cmd, args[0])
	}

	var fields []string
	for i := 1; i < len(args); i++ {
		if args[i] == "-fields" && i+1 < len(args) {
			fields = strings.Split(args[i+1], ",")
			i++
		}
	}
	return id, fields, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
