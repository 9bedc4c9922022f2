package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/partitura/partitura_admin/internal/api"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/partitura/partitura_admin/internal/ui"
)

const datetimeLayout = "2006-01-02T15:04"

// --- value helpers ---------------------------------------------------------

func str(values ui.Values, key string) string {
	if s, ok := values[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func intVal(values ui.Values, key string) int {
	switch v := values[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func boolVal(values ui.Values, key string) bool {
	b, _ := values[key].(bool)
	return b
}

// optID parses an optional entity reference out of a select value.
func optID(values ui.Values, key string) *int64 {
	s := str(values, key)
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func parseDatetime(values ui.Values, key string) (time.Time, error) {
	s := str(values, key)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(datetimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida en %s (formato AAAA-MM-DDTHH:MM)", key)
	}
	return t, nil
}

// attachment opens a local file path entered into a file field.
func attachment(values ui.Values, key string) (*api.FileAttachment, *os.File, error) {
	path := str(values, key)
	if path == "" {
		return nil, nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo abrir %s: %w", path, err)
	}
	return &api.FileAttachment{Name: filepath.Base(path), Content: file}, file, nil
}

func staticFields(fields []ui.Field) func(context.Context) ([]ui.Field, error) {
	return func(context.Context) ([]ui.Field, error) {
		return fields, nil
	}
}

// labelOr resolves a display label, falling back to the raw code for
// values the map does not know.
func labelOr[K ~string](labels map[K]string, key K) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return string(key)
}

// --- themes ----------------------------------------------------------------

func newThemesScreen(client *api.Client) *Screen {
	fields := []ui.Field{
		{Key: "title", Label: "Título", Type: ui.FieldText, Required: true},
		{Key: "artist", Label: "Artista", Type: ui.FieldText, Required: true},
		{Key: "tonalidad", Label: "Tonalidad", Type: ui.FieldText},
		{Key: "description", Label: "Descripción", Type: ui.FieldTextarea},
	}

	return &Screen{
		Name:  "themes",
		Title: "Tema",
		Table: ui.Table{
			Title: "Temas",
			Columns: []ui.Column{
				{Key: "title", Label: "Título", Sortable: true},
				{Key: "artist", Label: "Artista", Sortable: true},
				{Key: "tonalidad", Label: "Tonalidad"},
				{Key: "versions", Label: "Versiones", Align: ui.AlignRight},
				{Key: "updated_at", Label: "Actualizado", Sortable: true},
			},
		},
		Fields: staticFields(fields),
		Load: func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error) {
			themes, total, err := client.GetThemes(ctx, params)
			if err != nil {
				return nil, 0, err
			}
			rows := make([]ui.Row, 0, len(themes))
			for _, t := range themes {
				rows = append(rows, ui.Row{
					"id":          t.ID,
					"title":       t.Title,
					"artist":      t.Artist,
					"tonalidad":   t.Tonality,
					"description": t.Description,
					"versions":    len(t.Versions),
					"updated_at":  t.UpdatedAt,
				})
			}
			return rows, total, nil
		},
		Defaults: func() ui.Values {
			return ui.Values{"title": "", "artist": "", "tonalidad": "", "description": ""}
		},
		EditValues: func(row ui.Row) ui.Values {
			return ui.Values{
				"title":       row["title"],
				"artist":      row["artist"],
				"tonalidad":   row["tonalidad"],
				"description": row["description"],
			}
		},
		Save: func(ctx context.Context, id int64, creating bool, values ui.Values) error {
			input := api.ThemeInput{
				Title:       str(values, "title"),
				Artist:      str(values, "artist"),
				Tonality:    str(values, "tonalidad"),
				Description: str(values, "description"),
			}
			if creating {
				_, err := client.CreateTheme(ctx, input)
				return err
			}
			_, err := client.UpdateTheme(ctx, id, input)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return client.DeleteTheme(ctx, id)
		},
		Detail: func(ctx context.Context, id int64) ([]ui.DetailRow, error) {
			theme, err := client.GetTheme(ctx, id)
			if err != nil {
				return nil, err
			}
			detail := []ui.DetailRow{
				{Label: "Título", Value: theme.Title},
				{Label: "Artista", Value: theme.Artist},
				{Label: "Tonalidad", Value: theme.Tonality},
				{Label: "Descripción", Value: theme.Description},
				{Label: "Creado", Value: ui.FormatDate(theme.CreatedAt)},
				{Label: "Actualizado", Value: ui.FormatDate(theme.UpdatedAt)},
			}
			for _, version := range theme.Versions {
				detail = append(detail, ui.DetailRow{
					Label: "Versión",
					Value: fmt.Sprintf("%s (%s)", version.Title, labelOr(versionTypeLabels, version.Type)),
				})
			}
			return detail, nil
		},
	}
}

// --- versions --------------------------------------------------------------

var versionTypeLabels = map[model.VersionType]string{
	model.VersionStandard:      "Estándar",
	model.VersionEnsamble:      "Ensamble",
	model.VersionDueto:         "Dueto",
	model.VersionGrupoReducido: "Grupo Reducido",
}

var partTypeLabels = map[model.PartType]string{
	model.PartMelodiaPrincipal:  "Melodía Principal",
	model.PartMelodiaSecundaria: "Melodía Secundaria",
	model.PartArmonia:           "Armonía",
	model.PartBajo:              "Bajo",
}

var clefLabels = map[model.Clef]string{
	model.ClefSol: "Sol",
	model.ClefFa:  "Fa",
}

func newVersionsScreen(client *api.Client) *Screen {
	return &Screen{
		Name:  "versions",
		Title: "Versión",
		Table: ui.Table{
			Title: "Versiones",
			Columns: []ui.Column{
				{Key: "theme_title", Label: "Tema", Sortable: true},
				{Key: "title", Label: "Título", Sortable: true},
				{Key: "type", Label: "Tipo", Render: func(value any, _ ui.Row) string {
					return labelOr(versionTypeLabels, model.VersionType(ui.Stringify(value)))
				}},
				{Key: "sheet_music_count", Label: "Partituras", Align: ui.AlignRight},
				{Key: "created_at", Label: "Creado", Sortable: true},
			},
		},
		Fields: func(ctx context.Context) ([]ui.Field, error) {
			themes, _, err := client.GetThemes(ctx, api.ListParams{})
			if err != nil {
				return nil, err
			}
			themeOptions := make([]ui.Option, 0, len(themes))
			for _, t := range themes {
				themeOptions = append(themeOptions, ui.Option{
					Value: strconv.FormatInt(t.ID, 10),
					Label: fmt.Sprintf("%s - %s", t.Title, t.Artist),
				})
			}

			typeOptions := make([]ui.Option, 0, len(model.VersionTypes))
			for _, vt := range model.VersionTypes {
				typeOptions = append(typeOptions, ui.Option{Value: string(vt), Label: versionTypeLabels[vt]})
			}

			return []ui.Field{
				{Key: "theme", Label: "Tema", Type: ui.FieldSelect, Required: true, Options: themeOptions},
				{Key: "title", Label: "Título", Type: ui.FieldText, Required: true},
				{Key: "type", Label: "Tipo", Type: ui.FieldSelect, Required: true, Options: typeOptions},
				{Key: "notes", Label: "Notas", Type: ui.FieldTextarea},
				{Key: "image", Label: "Imagen (ruta)", Type: ui.FieldText},
				{Key: "audio_file", Label: "Audio (ruta)", Type: ui.FieldText},
				{Key: "mus_file", Label: "Archivo .mus (ruta)", Type: ui.FieldText},
			}, nil
		},
		Load: func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error) {
			versions, total, err := client.GetVersions(ctx, params)
			if err != nil {
				return nil, 0, err
			}
			rows := make([]ui.Row, 0, len(versions))
			for _, v := range versions {
				themeTitle := v.ThemeTitle
				if themeTitle == "" {
					themeTitle = strconv.FormatInt(v.Theme, 10)
				}
				rows = append(rows, ui.Row{
					"id":                v.ID,
					"theme":             v.Theme,
					"theme_title":       themeTitle,
					"title":             v.Title,
					"type":              string(v.Type),
					"notes":             v.Notes,
					"sheet_music_count": v.SheetMusicCount,
					"created_at":        v.CreatedAt,
				})
			}
			return rows, total, nil
		},
		Defaults: func() ui.Values {
			return ui.Values{"theme": "", "title": "", "type": string(model.VersionStandard), "notes": ""}
		},
		EditValues: func(row ui.Row) ui.Values {
			return ui.Values{
				"theme": strconv.FormatInt(asInt64(row["theme"]), 10),
				"title": row["title"],
				"type":  row["type"],
				"notes": row["notes"],
			}
		},
		Save: func(ctx context.Context, id int64, creating bool, values ui.Values) error {
			themeID := optID(values, "theme")
			if themeID == nil {
				return errors.New("campo obligatorio: Tema")
			}

			form := api.VersionForm{
				Theme: *themeID,
				Title: str(values, "title"),
				Type:  model.VersionType(str(values, "type")),
				Notes: str(values, "notes"),
			}

			for _, part := range []struct {
				key string
				att **api.FileAttachment
			}{
				{"image", &form.Image},
				{"audio_file", &form.AudioFile},
				{"mus_file", &form.MusFile},
			} {
				att, file, err := attachment(values, part.key)
				if err != nil {
					return err
				}
				if file != nil {
					defer file.Close()
				}
				*part.att = att
			}

			if creating {
				_, err := client.CreateVersion(ctx, form)
				return err
			}
			_, err := client.UpdateVersion(ctx, id, form)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return client.DeleteVersion(ctx, id)
		},
		// The version panel also pulls the sheet-music parts of the
		// version, the way the original detail page listed them.
		Detail: func(ctx context.Context, id int64) ([]ui.DetailRow, error) {
			version, err := client.GetVersion(ctx, id)
			if err != nil {
				return nil, err
			}
			themeTitle := version.ThemeTitle
			if themeTitle == "" {
				themeTitle = strconv.FormatInt(version.Theme, 10)
			}
			detail := []ui.DetailRow{
				{Label: "Tema", Value: themeTitle},
				{Label: "Título", Value: version.Title},
				{Label: "Tipo", Value: labelOr(versionTypeLabels, version.Type)},
				{Label: "Notas", Value: version.Notes},
				{Label: "Imagen", Value: version.Image},
				{Label: "Audio", Value: version.AudioFile},
				{Label: "Archivo .mus", Value: version.MusFile},
				{Label: "Creado", Value: ui.FormatDate(version.CreatedAt)},
			}

			sheets, _, err := client.GetSheetMusic(ctx, api.ListParams{
				Filters: map[string]string{"version": strconv.FormatInt(id, 10)},
			})
			if err != nil {
				return nil, err
			}
			for _, sheet := range sheets {
				detail = append(detail, ui.DetailRow{
					Label: "Partitura",
					Value: fmt.Sprintf("%s, clave de %s, %s",
						labelOr(partTypeLabels, sheet.Type), labelOr(clefLabels, sheet.Clef), sheet.RelativeKey),
				})
			}
			return detail, nil
		},
	}
}

func asInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// --- events ----------------------------------------------------------------

var eventTypeLabels = map[model.EventType]string{
	model.EventConcert:   "Concierto",
	model.EventRehearsal: "Ensayo",
	model.EventRecording: "Grabación",
	model.EventWorkshop:  "Taller",
	model.EventOther:     "Otro",
}

var eventStatusLabels = map[model.EventStatus]string{
	model.EventDraft:     "Borrador",
	model.EventConfirmed: "Confirmado",
	model.EventCancelled: "Cancelado",
	model.EventCompleted: "Completado",
}

func newEventsScreen(client *api.Client) *Screen {
	return &Screen{
		Name:  "events",
		Title: "Evento",
		Table: ui.Table{
			Title: "Eventos",
			Columns: []ui.Column{
				{Key: "title", Label: "Título", Sortable: true},
				{Key: "event_type", Label: "Tipo", Render: func(value any, _ ui.Row) string {
					return labelOr(eventTypeLabels, model.EventType(ui.Stringify(value)))
				}},
				{Key: "start_datetime", Label: "Fecha de Inicio", Sortable: true},
				{Key: "location", Label: "Ubicación", Render: func(value any, _ ui.Row) string {
					if loc, ok := value.(*model.Location); ok && loc != nil {
						return fmt.Sprintf("%s, %s", loc.Name, loc.City)
					}
					return "-"
				}},
				{Key: "status", Label: "Estado", Render: func(value any, _ ui.Row) string {
					return ui.FormatStatus(ui.Stringify(value))
				}},
			},
		},
		// The location and repertoire pickers are populated from live
		// lists every time the dialog opens.
		Fields: func(ctx context.Context) ([]ui.Field, error) {
			locations, _, err := client.GetLocations(ctx, api.ListParams{})
			if err != nil {
				return nil, err
			}
			repertoires, _, err := client.GetRepertoires(ctx, api.ListParams{})
			if err != nil {
				return nil, err
			}

			locationOptions := make([]ui.Option, 0, len(locations))
			for _, loc := range locations {
				locationOptions = append(locationOptions, ui.Option{
					Value: strconv.FormatInt(loc.ID, 10),
					Label: fmt.Sprintf("%s, %s", loc.Name, loc.City),
				})
			}
			repertoireOptions := make([]ui.Option, 0, len(repertoires))
			for _, rep := range repertoires {
				repertoireOptions = append(repertoireOptions, ui.Option{
					Value: strconv.FormatInt(rep.ID, 10),
					Label: rep.Name,
				})
			}

			typeOptions := make([]ui.Option, 0, len(model.EventTypes))
			for _, et := range model.EventTypes {
				typeOptions = append(typeOptions, ui.Option{Value: string(et), Label: eventTypeLabels[et]})
			}
			statusOptions := make([]ui.Option, 0, len(model.EventStatuses))
			for _, es := range model.EventStatuses {
				statusOptions = append(statusOptions, ui.Option{Value: string(es), Label: eventStatusLabels[es]})
			}

			return []ui.Field{
				{Key: "title", Label: "Título", Type: ui.FieldText, Required: true},
				{Key: "description", Label: "Descripción", Type: ui.FieldTextarea},
				{Key: "event_type", Label: "Tipo de Evento", Type: ui.FieldSelect, Required: true, Options: typeOptions},
				{Key: "status", Label: "Estado", Type: ui.FieldSelect, Required: true, Options: statusOptions},
				{Key: "start_datetime", Label: "Fecha y Hora de Inicio", Type: ui.FieldDateTime, Required: true},
				{Key: "end_datetime", Label: "Fecha y Hora de Fin", Type: ui.FieldDateTime},
				{Key: "location_id", Label: "Ubicación", Type: ui.FieldSelect, Options: locationOptions},
				{Key: "repertoire_id", Label: "Repertorio", Type: ui.FieldSelect, Options: repertoireOptions},
				{Key: "is_public", Label: "Evento Público", Type: ui.FieldBoolean},
				{Key: "max_attendees", Label: "Máximo de Asistentes", Type: ui.FieldNumber},
			}, nil
		},
		Load: func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error) {
			events, total, err := client.GetEvents(ctx, params)
			if err != nil {
				return nil, 0, err
			}
			rows := make([]ui.Row, 0, len(events))
			for _, e := range events {
				row := ui.Row{
					"id":             e.ID,
					"title":          e.Title,
					"description":    e.Description,
					"event_type":     string(e.EventType),
					"status":         string(e.Status),
					"start_datetime": e.StartDatetime,
					"end_datetime":   e.EndDatetime,
					"location":       e.Location,
					"is_public":      e.IsPublic,
					"max_attendees":  e.MaxAttendees,
				}
				if e.LocationID != nil {
					row["location_id"] = *e.LocationID
				}
				if e.RepertoireID != nil {
					row["repertoire_id"] = *e.RepertoireID
				}
				rows = append(rows, row)
			}
			return rows, total, nil
		},
		Defaults: func() ui.Values {
			return ui.Values{
				"title":         "",
				"description":   "",
				"event_type":    string(model.EventOther),
				"status":        string(model.EventDraft),
				"is_public":     false,
				"max_attendees": float64(0),
			}
		},
		EditValues: func(row ui.Row) ui.Values {
			values := ui.Values{
				"title":         row["title"],
				"description":   row["description"],
				"event_type":    row["event_type"],
				"status":        row["status"],
				"is_public":     row["is_public"],
				"max_attendees": float64(intVal(ui.Values(row), "max_attendees")),
			}
			if start, ok := row["start_datetime"].(time.Time); ok {
				values["start_datetime"] = start.Format(datetimeLayout)
			}
			if end, ok := row["end_datetime"].(*time.Time); ok && end != nil {
				values["end_datetime"] = end.Format(datetimeLayout)
			}
			if id, ok := row["location_id"]; ok {
				values["location_id"] = strconv.FormatInt(asInt64(id), 10)
			}
			if id, ok := row["repertoire_id"]; ok {
				values["repertoire_id"] = strconv.FormatInt(asInt64(id), 10)
			}
			return values
		},
		Save: func(ctx context.Context, id int64, creating bool, values ui.Values) error {
			start, err := parseDatetime(values, "start_datetime")
			if err != nil {
				return err
			}
			if start.IsZero() {
				return errors.New("campo obligatorio: Fecha y Hora de Inicio")
			}

			input := api.EventInput{
				Title:         str(values, "title"),
				Description:   str(values, "description"),
				EventType:     model.EventType(str(values, "event_type")),
				Status:        model.EventStatus(str(values, "status")),
				StartDatetime: start,
				LocationID:    optID(values, "location_id"),
				RepertoireID:  optID(values, "repertoire_id"),
				IsPublic:      boolVal(values, "is_public"),
				MaxAttendees:  intVal(values, "max_attendees"),
			}
			if end, err := parseDatetime(values, "end_datetime"); err != nil {
				return err
			} else if !end.IsZero() {
				input.EndDatetime = &end
			}

			if creating {
				_, err := client.CreateEvent(ctx, input)
				return err
			}
			_, err = client.UpdateEvent(ctx, id, input)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return client.DeleteEvent(ctx, id)
		},
		Detail: func(ctx context.Context, id int64) ([]ui.DetailRow, error) {
			event, err := client.GetEvent(ctx, id)
			if err != nil {
				return nil, err
			}
			detail := []ui.DetailRow{
				{Label: "Título", Value: event.Title},
				{Label: "Descripción", Value: event.Description},
				{Label: "Tipo", Value: labelOr(eventTypeLabels, event.EventType)},
				{Label: "Estado", Value: labelOr(eventStatusLabels, event.Status)},
				{Label: "Inicio", Value: ui.FormatDate(event.StartDatetime)},
			}
			if event.EndDatetime != nil {
				detail = append(detail, ui.DetailRow{Label: "Fin", Value: ui.FormatDate(*event.EndDatetime)})
			}
			if event.Location != nil {
				detail = append(detail, ui.DetailRow{
					Label: "Ubicación",
					Value: fmt.Sprintf("%s, %s", event.Location.Name, event.Location.City),
				})
			}
			if event.Repertoire != nil {
				detail = append(detail, ui.DetailRow{Label: "Repertorio", Value: event.Repertoire.Name})
			}
			visibility := "No"
			if event.IsPublic {
				visibility = "Sí"
			}
			detail = append(detail, ui.DetailRow{Label: "Evento Público", Value: visibility})
			if event.MaxAttendees > 0 {
				detail = append(detail, ui.DetailRow{Label: "Máximo de Asistentes", Value: strconv.Itoa(event.MaxAttendees)})
			}
			detail = append(detail, ui.DetailRow{Label: "Notas", Value: event.Notes})
			return detail, nil
		},
	}
}

// --- locations -------------------------------------------------------------

func newLocationsScreen(client *api.Client) *Screen {
	fields := []ui.Field{
		{Key: "name", Label: "Nombre", Type: ui.FieldText, Required: true},
		{Key: "address", Label: "Dirección", Type: ui.FieldText, Required: true},
		{Key: "city", Label: "Ciudad", Type: ui.FieldText, Required: true},
		{Key: "country", Label: "País", Type: ui.FieldText},
		{Key: "capacity", Label: "Capacidad", Type: ui.FieldNumber},
		{Key: "contact_email", Label: "Email de Contacto", Type: ui.FieldEmail},
		{Key: "contact_phone", Label: "Teléfono", Type: ui.FieldText},
		{Key: "website", Label: "Sitio Web", Type: ui.FieldText},
		{Key: "notes", Label: "Notas", Type: ui.FieldTextarea},
		{Key: "is_active", Label: "Activa", Type: ui.FieldBoolean},
	}

	return &Screen{
		Name:  "locations",
		Title: "Ubicación",
		Table: ui.Table{
			Title: "Ubicaciones",
			Columns: []ui.Column{
				{Key: "name", Label: "Nombre", Sortable: true},
				{Key: "city", Label: "Ciudad", Sortable: true},
				{Key: "country", Label: "País"},
				{Key: "capacity", Label: "Capacidad", Align: ui.AlignRight},
				{Key: "is_active", Label: "Activa", Render: func(value any, _ ui.Row) string {
					if b, ok := value.(bool); ok && b {
						return "Sí"
					}
					return "No"
				}},
			},
		},
		Fields: staticFields(fields),
		Load: func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error) {
			locations, total, err := client.GetLocations(ctx, params)
			if err != nil {
				return nil, 0, err
			}
			rows := make([]ui.Row, 0, len(locations))
			for _, loc := range locations {
				rows = append(rows, ui.Row{
					"id":            loc.ID,
					"name":          loc.Name,
					"address":       loc.Address,
					"city":          loc.City,
					"country":       loc.Country,
					"capacity":      loc.Capacity,
					"contact_email": loc.ContactEmail,
					"contact_phone": loc.ContactPhone,
					"website":       loc.Website,
					"notes":         loc.Notes,
					"is_active":     loc.IsActive,
				})
			}
			return rows, total, nil
		},
		Defaults: func() ui.Values {
			return ui.Values{"name": "", "address": "", "city": "", "country": "", "capacity": float64(0), "is_active": true}
		},
		EditValues: func(row ui.Row) ui.Values {
			return ui.Values{
				"name":          row["name"],
				"address":       row["address"],
				"city":          row["city"],
				"country":       row["country"],
				"capacity":      float64(intVal(ui.Values(row), "capacity")),
				"contact_email": row["contact_email"],
				"contact_phone": row["contact_phone"],
				"website":       row["website"],
				"notes":         row["notes"],
				"is_active":     row["is_active"],
			}
		},
		Save: func(ctx context.Context, id int64, creating bool, values ui.Values) error {
			input := api.LocationInput{
				Name:         str(values, "name"),
				Address:      str(values, "address"),
				City:         str(values, "city"),
				Country:      str(values, "country"),
				Capacity:     intVal(values, "capacity"),
				ContactEmail: str(values, "contact_email"),
				ContactPhone: str(values, "contact_phone"),
				Website:      str(values, "website"),
				Notes:        str(values, "notes"),
				IsActive:     boolVal(values, "is_active"),
			}
			if creating {
				_, err := client.CreateLocation(ctx, input)
				return err
			}
			_, err := client.UpdateLocation(ctx, id, input)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return client.DeleteLocation(ctx, id)
		},
	}
}

// --- repertoires -----------------------------------------------------------

func newRepertoiresScreen(client *api.Client) *Screen {
	fields := []ui.Field{
		{Key: "name", Label: "Nombre", Type: ui.FieldText, Required: true},
		{Key: "description", Label: "Descripción", Type: ui.FieldTextarea},
		{Key: "is_active", Label: "Activo", Type: ui.FieldBoolean},
	}

	return &Screen{
		Name:  "repertoires",
		Title: "Repertorio",
		Table: ui.Table{
			Title: "Repertorios",
			Columns: []ui.Column{
				{Key: "name", Label: "Nombre", Sortable: true},
				{Key: "description", Label: "Descripción"},
				{Key: "versions", Label: "Versiones", Align: ui.AlignRight},
				{Key: "is_active", Label: "Activo", Render: func(value any, _ ui.Row) string {
					if b, ok := value.(bool); ok && b {
						return "Sí"
					}
					return "No"
				}},
			},
		},
		Fields: staticFields(fields),
		Load: func(ctx context.Context, params api.ListParams) ([]ui.Row, int, error) {
			repertoires, total, err := client.GetRepertoires(ctx, params)
			if err != nil {
				return nil, 0, err
			}
			rows := make([]ui.Row, 0, len(repertoires))
			for _, rep := range repertoires {
				rows = append(rows, ui.Row{
					"id":          rep.ID,
					"name":        rep.Name,
					"description": rep.Description,
					"versions":    len(rep.Versions),
					"is_active":   rep.IsActive,
				})
			}
			return rows, total, nil
		},
		Defaults: func() ui.Values {
			return ui.Values{"name": "", "description": "", "is_active": true}
		},
		EditValues: func(row ui.Row) ui.Values {
			return ui.Values{
				"name":        row["name"],
				"description": row["description"],
				"is_active":   row["is_active"],
			}
		},
		Save: func(ctx context.Context, id int64, creating bool, values ui.Values) error {
			input := api.RepertoireInput{
				Name:        str(values, "name"),
				Description: str(values, "description"),
				IsActive:    boolVal(values, "is_active"),
			}
			if creating {
				_, err := client.CreateRepertoire(ctx, input)
				return err
			}
			_, err := client.UpdateRepertoire(ctx, id, input)
			return err
		},
		Delete: func(ctx context.Context, id int64) error {
			return client.DeleteRepertoire(ctx, id)
		},
	}
}

// --- instruments -----------------------------------------------------------

var familyLabels = map[model.InstrumentFamily]string{
	model.FamilyWoodwind:   "Viento-madera",
	model.FamilyBrass:      "Viento-metal",
	model.FamilyPercussion: "Percusión",
}

func instrumentRows() []ui.Row {
	rows := make([]ui.Row, 0, len(model.WindInstruments))
	for i, inst := range model.WindInstruments {
		rows = append(rows, ui.Row{
			"id":        i + 1,
			"name":      inst.Name,
			"family":    labelOr(familyLabels, inst.Family),
			"afinacion": inst.Tuning,
			"clef":      labelOr(clefLabels, inst.Clef),
			"range":     inst.Range,
		})
	}
	return rows
}

// remoteInstrumentRows maps the API instrument list into table rows. The
// remote records carry no clef or range; those columns stay blank.
func remoteInstrumentRows(instruments []model.Instrument) []ui.Row {
	rows := make([]ui.Row, 0, len(instruments))
	for _, inst := range instruments {
		rows = append(rows, ui.Row{
			"id":        inst.ID,
			"name":      inst.Name,
			"family":    labelOr(familyLabels, inst.Family),
			"afinacion": inst.Tuning,
		})
	}
	return rows
}
