package model

import "time"

// InstrumentFamily groups instruments by section.
type InstrumentFamily string

const (
	FamilyWoodwind   InstrumentFamily = "VIENTO_MADERA"
	FamilyBrass      InstrumentFamily = "VIENTO_METAL"
	FamilyPercussion InstrumentFamily = "PERCUSION"
)

// Instrument is the API-side instrument record referenced by sheet music.
type Instrument struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Family    InstrumentFamily `json:"family"`
	Tuning    string           `json:"afinacion"`
	CreatedAt time.Time        `json:"created_at"`
}

// WindInstrument is an entry of the static reference catalog shown on the
// instruments screen. The catalog is a hardcoded lookup table, not fetched.
type WindInstrument struct {
	ID          string
	Name        string
	Family      InstrumentFamily
	Tuning      string
	Clef        Clef
	Range       string
	Description string
}

// WindInstruments is the woodwind/brass catalog, in section order.
var WindInstruments = []WindInstrument{
	// Vientos-madera
	{ID: "piccolo", Name: "Piccolo", Family: FamilyWoodwind, Tuning: "C", Clef: ClefSol, Range: "D5-C8", Description: "Pequeña flauta aguda, suena una octava más alta"},
	{ID: "flute", Name: "Flauta", Family: FamilyWoodwind, Tuning: "C", Clef: ClefSol, Range: "C4-D7", Description: "Instrumento melódico principal en Do"},
	{ID: "oboe", Name: "Oboe", Family: FamilyWoodwind, Tuning: "C", Clef: ClefSol, Range: "Bb3-A6", Description: "Instrumento de doble caña en Do"},
	{ID: "english-horn", Name: "Corno Inglés", Family: FamilyWoodwind, Tuning: "F", Clef: ClefSol, Range: "E3-C6", Description: "Oboe contralto en Fa, suena una quinta más grave"},
	{ID: "clarinet-eb", Name: "Clarinete en Eb", Family: FamilyWoodwind, Tuning: "Eb", Clef: ClefSol, Range: "G3-C7", Description: "Clarinete agudo en Mi bemol"},
	{ID: "clarinet-bb", Name: "Clarinete en Bb", Family: FamilyWoodwind, Tuning: "Bb", Clef: ClefSol, Range: "D3-Bb6", Description: "Clarinete soprano principal en Si bemol"},
	{ID: "clarinet-a", Name: "Clarinete en A", Family: FamilyWoodwind, Tuning: "A", Clef: ClefSol, Range: "Db3-A6", Description: "Clarinete soprano en La"},
	{ID: "bass-clarinet", Name: "Clarinete Bajo", Family: FamilyWoodwind, Tuning: "Bb", Clef: ClefSol, Range: "D2-F5", Description: "Clarinete bajo en Si bemol, suena una octava más grave"},
	{ID: "bassoon", Name: "Fagot", Family: FamilyWoodwind, Tuning: "C", Clef: ClefFa, Range: "Bb1-Eb5", Description: "Instrumento grave de doble caña en Do"},
	{ID: "contrabassoon", Name: "Contrafagot", Family: FamilyWoodwind, Tuning: "C", Clef: ClefFa, Range: "Bb0-Bb3", Description: "Fagot contrabajo, suena una octava más grave"},
	{ID: "alto-sax", Name: "Saxofón Alto", Family: FamilyWoodwind, Tuning: "Eb", Clef: ClefSol, Range: "Db3-A5", Description: "Saxofón alto en Mi bemol"},
	{ID: "tenor-sax", Name: "Saxofón Tenor", Family: FamilyWoodwind, Tuning: "Bb", Clef: ClefSol, Range: "Ab2-E5", Description: "Saxofón tenor en Si bemol"},
	{ID: "baritone-sax", Name: "Saxofón Barítono", Family: FamilyWoodwind, Tuning: "Eb", Clef: ClefSol, Range: "Db2-A4", Description: "Saxofón barítono en Mi bemol"},

	// Vientos-metales
	{ID: "trumpet-bb", Name: "Trompeta en Bb", Family: FamilyBrass, Tuning: "Bb", Clef: ClefSol, Range: "E3-C6", Description: "Trompeta soprano principal en Si bemol"},
	{ID: "trumpet-c", Name: "Trompeta en C", Family: FamilyBrass, Tuning: "C", Clef: ClefSol, Range: "E3-C6", Description: "Trompeta soprano en Do"},
	{ID: "cornet", Name: "Corneta", Family: FamilyBrass, Tuning: "Bb", Clef: ClefSol, Range: "E3-C6", Description: "Corneta en Si bemol, más cálida que la trompeta"},
	{ID: "flugelhorn", Name: "Fliscorno", Family: FamilyBrass, Tuning: "Bb", Clef: ClefSol, Range: "E3-C6", Description: "Fliscorno en Si bemol, sonido muy cálido"},
	{ID: "french-horn", Name: "Trompa", Family: FamilyBrass, Tuning: "F", Clef: ClefSol, Range: "B2-C6", Description: "Trompa en Fa, puede usar clave de Fa en registro grave"},
	{ID: "trombone", Name: "Trombón", Family: FamilyBrass, Tuning: "C", Clef: ClefFa, Range: "E2-F5", Description: "Trombón de varas en Do"},
	{ID: "bass-trombone", Name: "Trombón Bajo", Family: FamilyBrass, Tuning: "C", Clef: ClefFa, Range: "C2-F5", Description: "Trombón bajo con gatillo"},
	{ID: "euphonium", Name: "Eufonio", Family: FamilyBrass, Tuning: "C", Clef: ClefFa, Range: "E2-C5", Description: "Eufonio barítono en Do"},
	{ID: "tuba", Name: "Tuba", Family: FamilyBrass, Tuning: "C", Clef: ClefFa, Range: "D1-F4", Description: "Tuba contrabajo en Do"},
	{ID: "tuba-bb", Name: "Tuba en Bb", Family: FamilyBrass, Tuning: "Bb", Clef: ClefFa, Range: "C1-Eb4", Description: "Tuba contrabajo en Si bemol"},
}

// InstrumentsByFamily filters the catalog by section.
func InstrumentsByFamily(family InstrumentFamily) []WindInstrument {
	var out []WindInstrument
	for _, inst := range WindInstruments {
		if inst.Family == family {
			out = append(out, inst)
		}
	}
	return out
}
