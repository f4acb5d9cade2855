package model

type Notes = []string

type ChordResponse struct {
	Name         string   `json:"name"`
	SimpleName   string   `json:"simple_name"`
	Root         string   `json:"root"`
	Quality      string   `json:"quality"`
	Descriptions []string `json:"descriptions"`
	Structure    []string `json:"structure"`
	Modifiers    []string `json:"modifiers"`
	Scale        Notes    `json:"scale"`
	Chord        Notes    `json:"chord"`
	LegibleScale Notes    `json:"legible_scale"`
	LegibleChord Notes    `json:"legible_chord"`
	MidiKeys     []int    `json:"midi_keys"`
	Key          string   `json:"key"`
}
