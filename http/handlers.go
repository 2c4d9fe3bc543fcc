package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/franjavi-upct-es/Proyecto-ICAP-AquaSense/db"
)

const serviceName = "AquaSenseCloud API"

var availableEndpoints = []string{"/", "/health", "/maxdiff", "/sd", "/temp", "/months"}

// handleIndex serves the static capability listing.
func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"servicio":    serviceName,
		"version":     "1.0",
		"description": "API REST para consultar datos de temperatura del Mar Menor",
		"endpoints": gin.H{
			"/health":  "Health check del servidor",
			"/maxdiff": "Diferencia de máxima temperatura mensual vs mes anterior",
			"/sd":      "Máxima desviación estándar mensual",
			"/temp":    "Temperatura media mensual",
			"/months":  "Lista de meses con datos disponibles",
		},
		"uso": gin.H{
			"maxdiff": "GET /maxdiff?month=3&year=2017",
			"sd":      "GET /sd?month=3&year=2017",
			"temp":    "GET /temp?month=3&year=2017",
			"months":  "GET /months",
		},
		"proyecto": "Infraestructura para la Computación de Altas Prestaciones - UPCT",
	})
}

// handleHealth is the liveness probe consumed by the load balancer. It
// checks table reachability, not a full query.
func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Status(c.Request.Context()); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	s.logger.Info("health check ok", zap.String("tabla", s.cfg.TableName))
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"servicio": serviceName,
		"tabla":    s.cfg.TableName,
		"mensaje":  "Servicio operativo",
	})
}

// handleMetric serves /maxdiff, /sd and /temp: validate the month/year
// pair, point-lookup the fixed metric type, normalize and shape the body.
func (s *Server) handleMetric(metricType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		month, year, perr := ValidateParams(c.Query("month"), c.Query("year"))
		if perr != nil {
			c.JSON(http.StatusBadRequest, perr.Body())
			return
		}

		key := db.NewMetricKey(month, year, metricType)
		rec, err := s.store.GetMetric(c.Request.Context(), key)
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Datos no encontrados",
				"message": fmt.Sprintf("No hay datos de %s para %s", metricType, key.Period),
				"month":   month,
				"year":    year,
			})
			return
		}
		if err != nil {
			s.logger.Error("storage lookup failed",
				zap.String("period", key.Period),
				zap.String("metric_type", metricType),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Error interno del servidor",
				"message": err.Error(),
			})
			return
		}

		attrs, _ := db.NormalizeNumbers(rec.Attrs).(map[string]any)
		body := gin.H{
			"month":    month,
			"year":     year,
			metricType: attrs["value"],
		}
		for _, field := range []string{"max_temp", "last_updated", "record_count"} {
			if v, ok := attrs[field]; ok {
				body[field] = v
			}
		}
		c.JSON(http.StatusOK, body)
	}
}

// handleMonths lists every period with stored data via a full table scan.
func (s *Server) handleMonths(c *gin.Context) {
	records, err := s.store.ScanMetrics(c.Request.Context())
	if err != nil {
		s.logger.Error("table scan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno del servidor",
			"message": err.Error(),
		})
		return
	}

	summaries := db.GroupByPeriod(records)
	c.JSON(http.StatusOK, gin.H{
		"months": summaries,
		"count":  len(summaries),
	})
}

func (s *Server) handleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":                 "Endpoint no encontrado",
		"message":               fmt.Sprintf("La ruta %s no existe", c.Request.URL.Path),
		"endpoints_disponibles": availableEndpoints,
	})
}
