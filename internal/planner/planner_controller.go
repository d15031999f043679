package planner

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/pkg/pdf"
	"github.com/jhartwg/scoutbase/pkg/utils"
)

// PlannerController handles squad/formation planner HTTP requests
type PlannerController struct {
	repo      PlannerRepository
	appConfig *config.Config
}

// NewPlannerController creates a new planner controller
func NewPlannerController(repo PlannerRepository, appConfig *config.Config) *PlannerController {
	return &PlannerController{
		repo:      repo,
		appConfig: appConfig,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, ErrLastTeam):
		return http.StatusConflict
	case errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrPlayerNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (c *PlannerController) loadState(ctx *gin.Context) (uint, *State, bool) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return 0, nil, false
	}
	state, err := c.repo.LoadState(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load planner state: " + err.Error()})
		return 0, nil, false
	}
	return userID, state, true
}

func (c *PlannerController) saveState(ctx *gin.Context, userID uint, state *State) bool {
	if err := c.repo.SaveState(userID, state); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save planner state: " + err.Error()})
		return false
	}
	return true
}

// GetState godoc
// @Summary Get the full planner state
// @Description Returns all shadow teams and the current selection
// @Tags planner
// @Produce json
// @Success 200 {object} State
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /planner/state [get]
// @Security Bearer
func (c *PlannerController) GetState(ctx *gin.Context) {
	_, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GetFormations godoc
// @Summary List the formation catalog
// @Tags planner
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /planner/formations [get]
// @Security Bearer
func (c *PlannerController) GetFormations(ctx *gin.Context) {
	keys := FormationKeys()
	formations := make([]Formation, 0, len(keys))
	for _, key := range keys {
		f, _ := FormationByKey(key)
		formations = append(formations, f)
	}
	ctx.JSON(http.StatusOK, gin.H{
		"default":    DefaultFormationKey,
		"keys":       keys,
		"formations": formations,
	})
}

// TeamInput is the request body for creating or renaming a team.
type TeamInput struct {
	Name string `json:"name" binding:"required"`
}

// FormationInput is the request body for selecting a formation.
type FormationInput struct {
	Formation string `json:"formation" binding:"required"`
}

// SlotInput is the request body for assigning a player to a slot.
type SlotInput struct {
	Slot int `json:"slot"`
}

// CreateTeam godoc
// @Summary Create a new shadow team
// @Description Creates an empty team with the default formation and selects it
// @Tags planner
// @Accept json
// @Produce json
// @Param team body TeamInput true "Team name"
// @Success 201 {object} State
// @Failure 400 {object} utils.ErrorResponse "Empty name"
// @Router /planner/teams [post]
// @Security Bearer
func (c *PlannerController) CreateTeam(ctx *gin.Context) {
	var input TeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if _, err := state.CreateTeam(input.Name); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// RenameTeam godoc
// @Summary Rename a shadow team
// @Tags planner
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param team body TeamInput true "New name"
// @Success 200 {object} State
// @Failure 400 {object} utils.ErrorResponse "Empty name"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /planner/teams/{team_id} [put]
// @Security Bearer
func (c *PlannerController) RenameTeam(ctx *gin.Context) {
	var input TeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.RenameTeam(ctx.Param("team_id"), input.Name); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// DeleteTeam godoc
// @Summary Delete a shadow team
// @Description Refused when it would remove the last remaining team
// @Tags planner
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} State
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Failure 409 {object} utils.ErrorResponse "Cannot delete last team"
// @Router /planner/teams/{team_id} [delete]
// @Security Bearer
func (c *PlannerController) DeleteTeam(ctx *gin.Context) {
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.DeleteTeam(ctx.Param("team_id")); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SelectTeam godoc
// @Summary Select the current shadow team
// @Tags planner
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} State
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /planner/teams/{team_id}/select [put]
// @Security Bearer
func (c *PlannerController) SelectTeam(ctx *gin.Context) {
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.SetCurrentTeam(ctx.Param("team_id")); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SetFormation godoc
// @Summary Set a team's formation
// @Description Unknown keys fall back to the default formation; player slot assignments are never modified
// @Tags planner
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param formation body FormationInput true "Formation key"
// @Success 200 {object} State
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /planner/teams/{team_id}/formation [put]
// @Security Bearer
func (c *PlannerController) SetFormation(ctx *gin.Context) {
	var input FormationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.SetFormation(ctx.Param("team_id"), input.Formation); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AddPlayer godoc
// @Summary Add a scouting candidate to the current team
// @Description Name is required; position, foot, and priority default to MIT, Rechts, and B. An optional slot index assigns the player directly.
// @Tags planner
// @Accept json
// @Produce json
// @Param player body PlayerInput true "Player data"
// @Success 201 {object} State
// @Failure 400 {object} utils.ErrorResponse "Empty name or invalid slot"
// @Router /planner/players [post]
// @Security Bearer
func (c *PlannerController) AddPlayer(ctx *gin.Context) {
	var input PlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if _, err := state.AddPlayer(input); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// RemovePlayer godoc
// @Summary Remove a player from the current team
// @Description Idempotent: unknown ids are ignored
// @Tags planner
// @Produce json
// @Param player_id path string true "Player ID"
// @Success 200 {object} State
// @Router /planner/players/{player_id} [delete]
// @Security Bearer
func (c *PlannerController) RemovePlayer(ctx *gin.Context) {
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	state.RemovePlayer(ctx.Param("player_id"))
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AssignPlayer godoc
// @Summary Assign a player to a formation slot
// @Description Several players may share one slot; they stack as a depth chart ordered by priority
// @Tags planner
// @Accept json
// @Produce json
// @Param player_id path string true "Player ID"
// @Param slot body SlotInput true "Slot index"
// @Success 200 {object} State
// @Failure 400 {object} utils.ErrorResponse "Invalid slot"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Router /planner/players/{player_id}/slot [put]
// @Security Bearer
func (c *PlannerController) AssignPlayer(ctx *gin.Context) {
	var input SlotInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.AssignToSlot(ctx.Param("player_id"), input.Slot); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// UnassignPlayer godoc
// @Summary Return a player to the bench
// @Description No-op when the player is already unassigned
// @Tags planner
// @Produce json
// @Param player_id path string true "Player ID"
// @Success 200 {object} State
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Router /planner/players/{player_id}/slot [delete]
// @Security Bearer
func (c *PlannerController) UnassignPlayer(ctx *gin.Context) {
	userID, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	if err := state.UnassignFromSlot(ctx.Param("player_id")); err != nil {
		ctx.JSON(statusForError(err), utils.ErrorResponse{Error: err.Error()})
		return
	}
	if !c.saveState(ctx, userID, state) {
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GetListView godoc
// @Summary Get the current team's roster grouped by position
// @Tags planner
// @Produce json
// @Param position query string false "Filter by position (TW, ABW, MIT, ANG)"
// @Success 200 {array} PositionGroup
// @Router /planner/views/list [get]
// @Security Bearer
func (c *PlannerController) GetListView(ctx *gin.Context) {
	_, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, state.ListView(Position(ctx.Query("position"))))
}

// GetPitchView godoc
// @Summary Get the current team projected onto its formation
// @Tags planner
// @Produce json
// @Success 200 {object} PitchViewData
// @Router /planner/views/pitch [get]
// @Security Bearer
func (c *PlannerController) GetPitchView(ctx *gin.Context) {
	_, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, state.PitchView())
}

// ExportListPDF godoc
// @Summary Download the current team's candidate list as PDF
// @Tags planner
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /planner/export/list.pdf [get]
// @Security Bearer
func (c *PlannerController) ExportListPDF(ctx *gin.Context) {
	_, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	team := state.CurrentTeam()

	b := pdf.NewBuilder(c.appConfig.PDF.BrandTitle)
	b.AddPage("SCHATTENTEAM")
	b.Title(team.Name)

	widths := []float64{40, 14, 34, 12, 12, 16, 20, 34}
	for _, group := range state.ListView("") {
		b.SectionTitle(string(group.Position))
		rows := make([][]string, 0, len(group.Players))
		for _, p := range group.Players {
			rows = append(rows, []string{
				p.Name, string(p.Priority), p.CurrentClub, p.Age,
				string(p.Foot), p.Height, p.MarketValue, p.Notes,
			})
		}
		b.Table(
			[]string{"Name", "Prio", "Verein", "Alter", "Fuss", "Gr.", "MW", "Notizen"},
			widths, rows,
		)
	}

	writePDF(ctx, b, "schattenteam-liste.pdf")
}

// ExportPitchPDF godoc
// @Summary Download the current team's formation board as PDF
// @Tags planner
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /planner/export/pitch.pdf [get]
// @Security Bearer
func (c *PlannerController) ExportPitchPDF(ctx *gin.Context) {
	_, state, ok := c.loadState(ctx)
	if !ok {
		return
	}
	view := state.PitchView()

	b := pdf.NewBuilder(c.appConfig.PDF.BrandTitle)
	b.AddPage("FORMATION")
	b.Title(view.TeamName + " - " + view.FormationName)

	slots := make([]pdf.PitchSlot, 0, len(view.Slots))
	for _, s := range view.Slots {
		names := make([]string, 0, len(s.Players))
		for _, p := range s.Players {
			names = append(names, string(p.Priority)+" "+p.Name)
		}
		slots = append(slots, pdf.PitchSlot{Label: s.Label, X: s.X, Y: s.Y, Players: names})
	}
	b.PitchDiagram(slots)

	if len(view.Bench) > 0 {
		b.SectionTitle("BANK")
		rows := make([][]string, 0, len(view.Bench))
		for _, p := range view.Bench {
			rows = append(rows, []string{p.Name, string(p.Priority), string(p.Position), p.CurrentClub})
		}
		b.Table([]string{"Name", "Prio", "Position", "Verein"}, []float64{60, 20, 30, 72}, rows)
	}

	writePDF(ctx, b, "schattenteam-formation.pdf")
}

func writePDF(ctx *gin.Context, b *pdf.Builder, filename string) {
	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Status(http.StatusOK)
	if err := b.Output(ctx.Writer); err != nil {
		log.Printf("planner: pdf export failed: %v", err)
	}
}
