package cmd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/logging"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/note"
	"github.com/jsphweid/changes/symbol"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord api",
	Long:  `Serves chords, notes and qualities as JSON over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(":" + constants.GetPort())
	},
}

func namesOf(notes []note.Note) model.Notes {
	res := make(model.Notes, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.Name())
	}
	return res
}

func chordResponse(c *chord.Chord) model.ChordResponse {
	mods := make([]string, 0)
	for _, m := range c.Modifiers() {
		mods = append(mods, m.Name())
	}
	keys := make([]int, 0)
	for _, n := range c.Chord() {
		keys = append(keys, n.MIDIKey())
	}
	return model.ChordResponse{
		Name:         c.Name(),
		SimpleName:   c.SimpleName(),
		Root:         c.Root().Name(),
		Quality:      c.Quality().Name,
		Descriptions: c.Descriptions(),
		Structure:    c.Structure(),
		Modifiers:    mods,
		Scale:        namesOf(c.Scale()),
		Chord:        namesOf(c.Chord()),
		LegibleScale: namesOf(c.LegibleScale()),
		LegibleChord: namesOf(c.LegibleChord()),
		MidiKeys:     keys,
		Key:          c.Key(),
	}
}

func noteResponse(n note.Note) model.NoteResponse {
	enharmonics := make([]string, 0)
	for _, e := range n.Enharmonics() {
		enharmonics = append(enharmonics, e.Name())
	}
	return model.NoteResponse{
		Name:              n.Name(),
		SimpleName:        n.SimpleName(),
		PitchClass:        int(n.PitchClass()),
		OctaveDesignation: n.OctaveDesignation(),
		MidiKey:           n.MIDIKey(),
		Frequency:         n.ToneFrequency(),
		Enharmonics:       enharmonics,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, symbol.ErrBadSymbol), errors.Is(err, note.ErrUnknownSpelling):
		return http.StatusBadRequest
	case errors.Is(err, chord.ErrConflictingModifier), errors.Is(err, chord.ErrNoMatchingQuality):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "could not encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logging.Debug("request failed", logging.Fields{"status": status, "error": err.Error()})
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	c, err := resolveChord(mux.Vars(r)["symbol"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, chordResponse(c))
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.Lookup(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	if raw := r.URL.Query().Get("octave"); raw != "" {
		octave, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("octave must be an integer"))
			return
		}
		n = n.WithOctave(octave)
	}
	writeJSON(w, http.StatusOK, noteResponse(n))
}

func HandleQualities(w http.ResponseWriter, r *http.Request) {
	res := make([]model.QualityResponse, 0)
	for _, q := range chord.Qualities() {
		res = append(res, model.QualityResponse{
			Name:         q.Name,
			Descriptions: q.Descriptions,
			Structure:    q.Structure,
		})
	}
	writeJSON(w, http.StatusOK, res)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords/{symbol}", HandleChord).Methods("GET")
	router.HandleFunc("/notes/{name}", HandleNote).Methods("GET")
	router.HandleFunc("/qualities", HandleQualities).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found: "+r.URL.Path))
	})
	return router
}

func NewHandler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(NewRouter())
}

func serve(addr string) error {
	logging.Info("serving", logging.Fields{"addr": addr})
	return http.ListenAndServe(addr, NewHandler())
}
