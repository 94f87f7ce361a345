package apis

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/ordkit/raresat/catalog"
	"github.com/ordkit/raresat/internal/metrics"
	"github.com/ordkit/raresat/sat"
)

func GetClassify(c *gin.Context) {
	raw := c.DefaultQuery("sat", "")
	s, err := sat.ParseSat(raw)
	if err != nil {
		errStr := err.Error()
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Error:  &errStr,
			Result: nil,
		})
		return
	}

	res := sat.Classify(s)
	metrics.ClassifyTotal.WithLabelValues(string(res.Category)).Inc()

	c.JSON(http.StatusOK, ClassifyResponse{
		Error:  nil,
		Result: &res,
	})
}

func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Error:  nil,
		Result: catalog.Generate(),
	})
}

func PostReconcile(c *gin.Context) {
	var req ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errStr := fmt.Sprintf("Failed to parse the request due to %v", err)
		c.JSON(http.StatusBadRequest, CatalogResponse{
			Error:  &errStr,
			Result: nil,
		})
		return
	}

	held, err := BatchParseSats(req.Held)
	if err != nil {
		errStr := err.Error()
		c.JSON(http.StatusBadRequest, CatalogResponse{
			Error:  &errStr,
			Result: nil,
		})
		return
	}

	c.JSON(http.StatusOK, CatalogResponse{
		Error:  nil,
		Result: catalog.Reconcile(held, catalog.Generate()),
	})
}

func PostQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errStr := fmt.Sprintf("Failed to parse the request due to %v", err)
		c.JSON(http.StatusBadRequest, CatalogResponse{
			Error:  &errStr,
			Result: nil,
		})
		return
	}

	held, err := BatchParseSats(req.Held)
	if err != nil {
		errStr := err.Error()
		c.JSON(http.StatusBadRequest, CatalogResponse{
			Error:  &errStr,
			Result: nil,
		})
		return
	}

	q := catalog.Query{
		Search:        req.Search,
		AvailableOnly: req.AvailableOnly,
	}
	if req.Tier != "" {
		tier, ok := catalog.ParseTier(req.Tier)
		if !ok {
			errStr := fmt.Sprintf("unknown rarity tier: %q", req.Tier)
			c.JSON(http.StatusBadRequest, CatalogResponse{
				Error:  &errStr,
				Result: nil,
			})
			return
		}
		q.Tier = tier
	}

	entries := catalog.Filter(catalog.Reconcile(held, catalog.Generate()), q)

	c.JSON(http.StatusOK, CatalogResponse{
		Error:  nil,
		Result: entries,
	})
}

func StartService(addr string, enableDebug bool, enablePprof bool) {
	if !enableDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(metrics.HTTP)
	if enablePprof {
		pprof.Register(r)
	}

	r.GET("/v1/raresat/classify", GetClassify)
	r.GET("/v1/raresat/catalog", GetCatalog)
	r.POST("/v1/raresat/reconcile", PostReconcile)
	r.POST("/v1/raresat/query", PostQuery)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to serve the API: %v", err)
	}
}
