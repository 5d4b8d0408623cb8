package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/lore"
)

type personaRequest struct {
	Persona string `json:"persona" binding:"required"`
}

func (s *Server) handleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, s.personas.Snapshot())
}

func (s *Server) handleSetPersona(c *gin.Context) {
	var req personaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "persona is required")
		return
	}
	p, ok := s.personas.Registry().Parse(strings.ToLower(req.Persona))
	if !ok {
		fail(c, http.StatusBadRequest, "unknown persona "+req.Persona)
		return
	}
	s.personas.SetPersona(c.Request.Context(), p)
	c.JSON(http.StatusOK, s.personas.Snapshot())
}

func (s *Server) handleTogglePersona(c *gin.Context) {
	s.personas.TogglePersona(c.Request.Context())
	c.JSON(http.StatusOK, s.personas.Snapshot())
}

func (s *Server) handleToggleStealth(c *gin.Context) {
	s.personas.ToggleStealth(c.Request.Context())
	c.JSON(http.StatusOK, s.personas.Snapshot())
}

func (s *Server) handleListLedger(c *gin.Context) {
	status := ledger.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		fail(c, http.StatusBadRequest, "unknown status "+string(status))
		return
	}
	c.JSON(http.StatusOK, s.ledger.Filter(c.Query("q"), c.Query("location"), status))
}

func (s *Server) handleGetRecord(c *gin.Context) {
	rec, ok := s.ledger.Get(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "no such record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleAddRecord(c *gin.Context) {
	var f ledger.Fields
	if err := c.ShouldBindJSON(&f); err != nil {
		fail(c, http.StatusBadRequest, "invalid record: "+err.Error())
		return
	}
	if strings.TrimSpace(f.Name) == "" {
		fail(c, http.StatusBadRequest, "name is required")
		return
	}
	if f.Status == "" {
		f.Status = ledger.StatusInStock
	}
	if !f.Status.Valid() {
		fail(c, http.StatusBadRequest, "unknown status "+string(f.Status))
		return
	}
	rec := s.ledger.Add(c.Request.Context(), f)
	s.metrics.LedgerMutation("add", s.ledger.Stats().TotalBottles)
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) handleUpdateRecord(c *gin.Context) {
	var p ledger.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid patch: "+err.Error())
		return
	}
	if p.Status != nil && !p.Status.Valid() {
		fail(c, http.StatusBadRequest, "unknown status "+string(*p.Status))
		return
	}
	id := c.Param("id")
	if !s.ledger.Update(c.Request.Context(), id, p) {
		fail(c, http.StatusNotFound, "no such record")
		return
	}
	s.metrics.LedgerMutation("update", s.ledger.Stats().TotalBottles)
	rec, _ := s.ledger.Get(id)
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleDeleteRecord(c *gin.Context) {
	if !s.ledger.Delete(c.Request.Context(), c.Param("id")) {
		fail(c, http.StatusNotFound, "no such record")
		return
	}
	s.metrics.LedgerMutation("delete", s.ledger.Stats().TotalBottles)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleResetLedger(c *gin.Context) {
	s.ledger.Reset(c.Request.Context())
	s.metrics.LedgerMutation("reset", s.ledger.Stats().TotalBottles)
	c.JSON(http.StatusOK, s.ledger.List())
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.ledger.Stats())
}

func (s *Server) handleReport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"report":    s.ledger.Report(),
		"suppliers": lore.Suppliers(),
	})
}

func (s *Server) world() lore.World { return lore.For(s.personas.Persona()) }

func (s *Server) handleNetwork(c *gin.Context) {
	net := s.world().Network()
	c.JSON(http.StatusOK, gin.H{"nodes": net.Nodes(), "edges": net.Edges()})
}

type characterView struct {
	Character   lore.Character `json:"character"`
	Connections []graph.Edge   `json:"connections"`
	Lit         []string       `json:"lit"`
	Dimmed      []string       `json:"dimmed"`
}

func (s *Server) handleCharacter(c *gin.Context) {
	w := s.world()
	id := c.Param("id")
	ch, ok := w.Character(id)
	if !ok {
		fail(c, http.StatusNotFound, "no such character in this network")
		return
	}
	net := w.Network()
	lit, dimmed := net.Partition(id)
	c.JSON(http.StatusOK, characterView{Character: ch, Connections: net.Connections(id), Lit: lit, Dimmed: dimmed})
}

func (s *Server) handleTerritories(c *gin.Context) {
	w := s.world()
	c.JSON(http.StatusOK, gin.H{
		"territories": w.Territories,
		"routes":      w.Routes,
		"events":      w.Events,
		"summary":     w.Summary(),
	})
}

func (s *Server) handleTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, s.world().Eras)
}

func (s *Server) handleDossier(c *gin.Context) {
	c.JSON(http.StatusOK, s.world().Roster)
}
