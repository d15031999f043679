package matchreport

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/internal/storage"
	"github.com/jhartwg/scoutbase/pkg/pdf"
	"github.com/jhartwg/scoutbase/pkg/utils"
)

// ReportKey holds the whole match-report form state.
const ReportKey = "scouting_match_report"

// MatchReportController handles the match-scouting form document
type MatchReportController struct {
	docs      storage.DocumentRepository
	appConfig *config.Config
}

// NewMatchReportController creates a new match report controller
func NewMatchReportController(docs storage.DocumentRepository, appConfig *config.Config) *MatchReportController {
	return &MatchReportController{
		docs:      docs,
		appConfig: appConfig,
	}
}

// load reads the user's report document; a missing or malformed document
// yields an empty report rather than an error.
func (c *MatchReportController) load(userID uint) (MatchReport, error) {
	var report MatchReport
	raw, found, err := c.docs.Get(userID, ReportKey)
	if err != nil {
		return report, err
	}
	if !found {
		return report, nil
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		log.Printf("matchreport: stored document malformed, starting empty: %v", err)
		return MatchReport{}, nil
	}
	return report, nil
}

func (c *MatchReportController) save(userID uint, report MatchReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.docs.Put(userID, ReportKey, raw)
}

// GetReport godoc
// @Summary Get the match-scouting form state
// @Tags match-report
// @Produce json
// @Success 200 {object} MatchReport
// @Router /reports/match [get]
// @Security Bearer
func (c *MatchReportController) GetReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	report, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// PutReport godoc
// @Summary Replace the match-scouting form state
// @Description Whole-document write; the last write wins
// @Tags match-report
// @Accept json
// @Produce json
// @Param report body MatchReport true "Full form state"
// @Success 200 {object} MatchReport
// @Router /reports/match [put]
// @Security Bearer
func (c *MatchReportController) PutReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	var report MatchReport
	if err := ctx.ShouldBindJSON(&report); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if err := c.save(userID, report); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ResetReport godoc
// @Summary Clear the match-scouting form
// @Description Deletes the stored form document; the next load starts empty
// @Tags match-report
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /reports/match [delete]
// @Security Bearer
func (c *MatchReportController) ResetReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	if err := c.docs.Delete(userID, ReportKey); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to reset report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "report cleared"})
}

// UploadImage godoc
// @Summary Attach an image or sketch to the match report
// @Tags match-report
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (png or jpeg)"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Unsupported file"
// @Router /reports/match/images [post]
// @Security Bearer
func (c *MatchReportController) UploadImage(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "image file is required"})
		return
	}
	filename, err := utils.SaveUploadedImage(ctx, file, c.appConfig.App.UploadDir)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}
	report.Images = append(report.Images, filename)
	if err := c.save(userID, report); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, utils.SuccessResponse{Message: "image attached", Data: filename})
}

// ExportPDF godoc
// @Summary Download the match analysis as PDF
// @Tags match-report
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /reports/match/export.pdf [get]
// @Security Bearer
func (c *MatchReportController) ExportPDF(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	report, err := c.load(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}

	b := pdf.NewBuilder(c.appConfig.PDF.BrandTitle)
	b.AddPage("SPIEL ANALYSE")

	home := report.HomeTeam
	if home == "" {
		home = "Heim"
	}
	away := report.AwayTeam
	if away == "" {
		away = "Gast"
	}
	b.Title(home + " vs " + away)

	b.TextRow("Wettbewerb: "+report.Competition, "Wetter: "+report.Weather)
	b.TextRow("Ort: "+report.Location, "Platz: "+report.PitchCondition)
	b.TextRow("Datum/Zeit: "+report.Date+" - "+report.Kickoff, "Scout: "+report.ScoutName)
	b.TextRow("System: "+report.Formation+" "+report.SystemInfo, "Form: "+report.CurrentForm)
	b.Spacer(4)

	rosterWidths := []float64{12, 56, 18, 24, 72}
	rosterHeaders := []string{"Nr", "Name", "Min", "Tore/Vorl", "Bewertung"}

	writeRoster := func(caption, coach string, roster []RosterItem) {
		b.SectionTitle(caption + " (Trainer: " + coach + ")")
		rows := make([][]string, 0, len(roster))
		for _, p := range roster {
			rows = append(rows, []string{p.Number, p.Name, p.Minutes, p.GoalsAssists, ""})
		}
		b.Table(rosterHeaders, rosterWidths, rows)
		for _, p := range roster {
			if p.Rating > 0 {
				b.RatingBar(p.Name, p.Rating)
			}
		}
		b.Spacer(4)
	}
	writeRoster("HEIM: "+home, report.HomeCoach, report.HomeRoster)
	writeRoster("GAST: "+away, report.AwayCoach, report.AwayRoster)

	if len(report.PlayerInfos) > 0 {
		b.SectionTitle("AUFFÄLLIGE SPIELER / EINZELKRITIK")
		for _, info := range report.PlayerInfos {
			b.TextBlock("#"+info.Number+" "+info.Name, info.Info)
		}
	}

	b.SectionTitle("ANALYSE & STATISTIK")
	b.TextBlock("Zusammenfassung", report.Summary)
	b.TextBlock("Allgemein", report.SWOT.General)
	b.TextBlock("Offensive", report.SWOT.Attack)
	b.TextBlock("Defensive", report.SWOT.Defense)
	b.TextBlock("Stärken", report.SWOT.Strengths)
	b.TextBlock("Schwächen", report.SWOT.Weaknesses)
	b.TextBlock("Ecken (offensiv)", report.CornersOffensive)
	b.TextBlock("Ecken (defensiv)", report.CornersDefensive)
	b.TextBlock("Freistöße (offensiv)", report.FreekicksOffensive)
	b.TextBlock("Freistöße (defensiv)", report.FreekicksDefensive)

	if len(report.Ticker) > 0 {
		b.SectionTitle("LIVETICKER / HIGHLIGHTS")
		for _, ev := range report.Ticker {
			b.TextBlock(ev.Minute+"'", ev.Text)
		}
	}

	if len(report.Images) > 0 {
		b.AddPage("BILDER / SKIZZEN")
		for _, img := range report.Images {
			// Broken assets are skipped inside EmbedImage; the report
			// is produced regardless.
			b.EmbedImage(filepath.Join(c.appConfig.App.UploadDir, filepath.Base(img)), 120)
			b.Spacer(6)
		}
	}

	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", `attachment; filename="spielanalyse.pdf"`)
	ctx.Status(http.StatusOK)
	if err := b.Output(ctx.Writer); err != nil {
		log.Printf("matchreport: pdf export failed: %v", err)
	}
}
