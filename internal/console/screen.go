package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/partitura/partitura_admin/internal/api"
	"github.com/partitura/partitura_admin/internal/ui"
)

// Screen is a generic resource screen: a table configuration plus CRUD
// callbacks into the API client. The harness supplies rendering, sorting
// and pagination wiring, and the dialog lifecycle; concrete screens supply
// only configuration.
type Screen struct {
	Name  string
	Title string
	Table ui.Table

	// Fields returns the form definition, with dynamic select options
	// resolved against live data (e.g. the events location picker).
	Fields func(ctx context.Context) ([]ui.Field, error)

	Load       func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error)
	Defaults   func() ui.Values
	EditValues func(row ui.Row) ui.Values
	Save       func(ctx context.Context, id int64, creating bool, values ui.Values) error
	Delete     func(ctx context.Context, id int64) error

	// Detail fetches one record for the view command. Screens without a
	// single-resource endpoint leave it nil and view renders the row's
	// visible cells instead.
	Detail func(ctx context.Context, id int64) ([]ui.DetailRow, error)
}

// Run is the screen loop: load, render, read a command, repeat. Sorting
// and pagination are applied by re-fetching with the new parameters, never
// by rearranging rows locally.
func (s *Screen) Run(ctx context.Context, con *Console) error {
	sort := ui.SortState{}
	page := ui.PageState{Size: con.pageSize}
	reload := true
	var rows []ui.Row
	var loadErr string

	for {
		if reload {
			s.Table.Render(con.ui.Writer(), ui.State{Loading: true, Sort: sort, Page: page})

			loaded, total, err := s.Load(ctx, api.ListParams{
				Page:     page.Page + 1,
				PageSize: page.Size,
				Ordering: sort.Ordering(),
			})
			if ctx.Err() != nil {
				// The screen was torn down while the request was in
				// flight; drop the late result instead of rendering it.
				return ctx.Err()
			}
			if err != nil {
				logScreenError(s.Name, err)
				loadErr = err.Error()
				rows = nil
			} else {
				loadErr = ""
				rows = loaded
				page.Total = total
			}
			reload = false
		}

		s.Table.Render(con.ui.Writer(), ui.State{Rows: rows, Sort: sort, Page: page, Err: loadErr})

		line, err := reader{con.rl}.ReadLine(s.Name + "> ")
		if err != nil {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "b", "back", "volver":
			return nil
		case "r", "reload":
			reload = true
		case "n", "next":
			if page.Page < page.Pages()-1 {
				page.Page++
				reload = true
			}
		case "p", "prev":
			if page.Page > 0 {
				page.Page--
				reload = true
			}
		case "size":
			if len(args) == 1 {
				if size, err := strconv.Atoi(args[0]); err == nil && size > 0 {
					page.Size = size
					page.Page = 0
					reload = true
				}
			}
		case "sort":
			if len(args) == 1 && s.sortable(args[0]) {
				sort = sort.Toggle(args[0])
				page.Page = 0
				reload = true
			} else {
				con.ui.Error("Campo no ordenable")
			}
		case "view", "ver":
			if err := s.showDetail(ctx, con, rows, args); err != nil {
				con.ui.Error(err.Error())
			}
		case "new", "nuevo":
			if s.Save == nil {
				con.ui.Error("Pantalla de solo lectura")
				continue
			}
			if err := s.openDialog(ctx, con, 0, true, s.Defaults()); err != nil {
				con.ui.Error(err.Error())
			}
			reload = true
		case "edit", "editar":
			row, err := s.findRow(rows, args)
			if err != nil {
				con.ui.Error(err.Error())
				continue
			}
			if err := s.openDialog(ctx, con, row.ID(), false, s.EditValues(row)); err != nil {
				con.ui.Error(err.Error())
			}
			reload = true
		case "del", "delete", "eliminar":
			row, err := s.findRow(rows, args)
			if err != nil {
				con.ui.Error(err.Error())
				continue
			}
			if err := s.confirmDelete(ctx, con, row); err != nil {
				con.ui.Error(err.Error())
			}
			reload = true
		case "help", "ayuda":
			con.ui.Println("n/p página, size N, sort <campo>, view <id>, new, edit <id>, del <id>, r recargar, b volver")
		default:
			con.ui.Error(fmt.Sprintf("Comando desconocido: %s", command))
		}
	}
}

func (s *Screen) sortable(field string) bool {
	for _, col := range s.Table.Columns {
		if col.Key == field {
			return col.Sortable
		}
	}
	return false
}

func (s *Screen) findRow(rows []ui.Row, args []string) (ui.Row, error) {
	if len(args) != 1 {
		return nil, errors.New("falta el id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, errors.New("id inválido")
	}
	for _, row := range rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, fmt.Errorf("no existe la fila %d", id)
}

// showDetail renders the single-resource panel. Screens with a detail
// endpoint fetch fresh data; the rest render the selected row's cells.
func (s *Screen) showDetail(ctx context.Context, con *Console, rows []ui.Row, args []string) error {
	if s.Detail == nil {
		row, err := s.findRow(rows, args)
		if err != nil {
			return err
		}
		ui.RenderDetail(con.ui.Writer(), fmt.Sprintf("%s %d", s.Title, row.ID()), rowDetail(s.Table.Columns, row))
		return nil
	}

	if len(args) != 1 {
		return errors.New("falta el id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.New("id inválido")
	}

	detail, err := s.Detail(ctx, id)
	if err != nil {
		return err
	}
	ui.RenderDetail(con.ui.Writer(), fmt.Sprintf("%s %d", s.Title, id), detail)
	return nil
}

func rowDetail(columns []ui.Column, row ui.Row) []ui.DetailRow {
	detail := make([]ui.DetailRow, 0, len(columns))
	for _, col := range columns {
		detail = append(detail, ui.DetailRow{Label: col.Label, Value: ui.CellValue(col, row)})
	}
	return detail
}

// openDialog runs the form dialog pre-filled for edit or with defaults for
// create. The save handler validates required fields before submitting;
// while a save is pending the loading flag gates re-entry.
func (s *Screen) openDialog(ctx context.Context, con *Console, id int64, creating bool, values ui.Values) error {
	fields, err := s.Fields(ctx)
	if err != nil {
		return err
	}

	title := "Editar " + s.Title
	if creating {
		title = "Nuevo " + s.Title
	}

	dialog := &ui.Dialog{
		Title:  title,
		Fields: fields,
		Values: values,
	}
	saved := false
	dialog.OnSave = func() error {
		if dialog.Loading {
			return nil
		}
		if err := ui.Validate(fields, dialog.Values); err != nil {
			return err
		}

		dialog.Loading = true
		defer func() { dialog.Loading = false }()
		if err := s.Save(ctx, id, creating, dialog.Values); err != nil {
			return err
		}
		saved = true
		return nil
	}

	if err := dialog.Run(reader{con.rl}, con.ui.Writer()); err != nil {
		return err
	}
	if saved {
		con.ui.Success(s.Title + " guardado")
	}
	return nil
}

func (s *Screen) confirmDelete(ctx context.Context, con *Console, row ui.Row) error {
	if s.Delete == nil {
		return errors.New("pantalla de solo lectura")
	}

	label := ui.Stringify(row["title"])
	if label == "" {
		label = ui.Stringify(row["name"])
	}
	if !con.confirm(fmt.Sprintf("¿Estás seguro de que quieres eliminar %q?", label)) {
		return nil
	}
	return s.Delete(ctx, row.ID())
}
