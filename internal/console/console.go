package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/partitura/partitura_admin/internal/api"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/partitura/partitura_admin/internal/ui"
	"github.com/rs/zerolog/log"
)

const prompt = "partitura> "

// Console is the interactive admin loop: it authenticates the session and
// dispatches to the resource screens.
type Console struct {
	ui       *ui.UI
	rl       *readline.Instance
	client   *api.Client
	pageSize int
	screens  map[string]*Screen
}

func New(client *api.Client, out io.Writer, useColor bool, pageSize int) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		Stdout: nonCloser{out},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	c := &Console{
		ui:       ui.NewUI(out, useColor),
		rl:       rl,
		client:   client,
		pageSize: pageSize,
	}
	c.screens = map[string]*Screen{
		"themes":      newThemesScreen(client),
		"versions":    newVersionsScreen(client),
		"events":      newEventsScreen(client),
		"locations":   newLocationsScreen(client),
		"repertoires": newRepertoiresScreen(client),
	}
	return c, nil
}

// nonCloser keeps readline from closing a writer the console does not own.
type nonCloser struct{ io.Writer }

func (nonCloser) Close() error { return nil }

// reader adapts readline to the dialog's input interface.
type reader struct{ rl *readline.Instance }

func (r reader) ReadLine(p string) (string, error) {
	r.rl.SetPrompt(p)
	defer r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (c *Console) Close() error {
	return c.rl.Close()
}

// Run drives the command loop until exit or EOF.
func (c *Console) Run(ctx context.Context) error {
	defer c.rl.Close()

	if !c.client.IsAuthenticated() {
		if err := c.login(ctx); err != nil {
			return err
		}
	}

	c.ui.Info("Escribe 'help' para ver los comandos disponibles.")

	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF on ctrl-D
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "exit", "quit", "salir":
			return nil
		case "help", "ayuda":
			c.printHelp()
		case "login":
			if err := c.login(ctx); err != nil {
				c.ui.Error(err.Error())
			}
		case "logout":
			c.client.Logout()
			c.ui.Success("Sesión cerrada")
		case "whoami":
			c.whoami()
		case "instruments", "instrumentos":
			c.renderInstruments(ctx)
		case "upload", "subir":
			if err := c.upload(ctx, args); err != nil {
				c.ui.Error(err.Error())
			}
		default:
			screen, ok := c.screens[command]
			if !ok {
				c.ui.Error(fmt.Sprintf("Comando desconocido: %s", command))
				continue
			}
			if err := screen.Run(ctx, c); err != nil {
				c.ui.Error(err.Error())
			}
		}
	}
}

func (c *Console) login(ctx context.Context) error {
	username, err := reader{c.rl}.ReadLine("Usuario: ")
	if err != nil {
		return err
	}
	password, err := c.rl.ReadPassword("Contraseña: ")
	if err != nil {
		return err
	}

	auth, err := c.client.Login(ctx, model.Credentials{
		Username: strings.TrimSpace(username),
		Password: string(password),
	})
	if err != nil {
		if api.IsUnauthorized(err) {
			return errors.New("credenciales inválidas")
		}
		return err
	}

	c.ui.Success(fmt.Sprintf("Sesión iniciada como %s", auth.User.Username))
	return nil
}

func (c *Console) whoami() {
	user := c.client.Session().User()
	if user == nil {
		c.ui.Info("No hay sesión activa")
		return
	}

	line := user.Username
	if claims, err := c.client.Session().AccessClaims(); err == nil && !claims.ExpiresAt.IsZero() {
		line += fmt.Sprintf(" (token expira %s)", ui.FormatDate(claims.ExpiresAt))
	}
	c.ui.Println(line)
}

// upload sends one or more local files to an API endpoint: the single-file
// "file" part for one path, repeated "files" parts for several.
func (c *Console) upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("uso: upload <endpoint> <archivo> [archivo...]")
	}
	endpoint, paths := args[0], args[1:]

	if len(paths) == 1 {
		file, err := os.Open(paths[0])
		if err != nil {
			return fmt.Errorf("no se pudo abrir el archivo: %w", err)
		}
		defer file.Close()

		if _, err := c.client.UploadFile(ctx, endpoint, filepath.Base(paths[0]), file); err != nil {
			return err
		}
		c.ui.Success("Archivo subido")
		return nil
	}

	var attachments []api.FileAttachment
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("no se pudo abrir el archivo: %w", err)
		}
		open = append(open, file)
		attachments = append(attachments, api.FileAttachment{Name: filepath.Base(path), Content: file})
	}

	if _, err := c.client.UploadFiles(ctx, endpoint, attachments); err != nil {
		return err
	}
	c.ui.Success(fmt.Sprintf("%d archivos subidos", len(paths)))
	return nil
}

// renderInstruments shows the remote instrument list when the API serves
// one and falls back to the built-in wind catalog otherwise.
func (c *Console) renderInstruments(ctx context.Context) {
	rows := instrumentRows()
	if remote, _, err := c.client.GetInstruments(ctx, api.ListParams{}); err == nil && len(remote) > 0 {
		rows = remoteInstrumentRows(remote)
	}

	table := ui.Table{
		Title: "Instrumentos de viento",
		Columns: []ui.Column{
			{Key: "name", Label: "Nombre"},
			{Key: "family", Label: "Familia"},
			{Key: "afinacion", Label: "Afinación"},
			{Key: "clef", Label: "Clave"},
			{Key: "range", Label: "Registro"},
		},
	}
	table.Render(c.ui.Writer(), ui.State{
		Rows: rows,
		Page: ui.PageState{Size: len(rows), Total: len(rows)},
	})
}

func (c *Console) printHelp() {
	c.ui.Println("Comandos:")
	c.ui.Println("  themes | versions | events | locations | repertoires")
	c.ui.Println("  instruments            catálogo de instrumentos")
	c.ui.Println("  upload <ruta> <arch>   subir archivos")
	c.ui.Println("  login | logout | whoami | exit")
}

// confirm asks a blocking s/N question, used to gate destructive actions.
func (c *Console) confirm(question string) bool {
	answer, err := reader{c.rl}.ReadLine(question + " (s/N): ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "si" || answer == "sí"
}

func logScreenError(screen string, err error) {
	log.Error().Str("screen", screen).Err(err).Msg("Screen operation failed")
}
