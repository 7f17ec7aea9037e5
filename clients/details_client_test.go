package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProductDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/wifi-product-details.json", r.URL.Path)
		w.Write([]byte(`{
			"overview": {
				"streams": 6,
				"coverageArea": {"squareMeters": 140, "squareFeet": 1500},
				"maxClientCount": "300+",
				"uplink": "2.5 GbE",
				"mounting": ["ceiling", "wall"],
				"powerMethod": "PoE+",
				"frequency": "2.4/5/6 GHz"
			},
			"hardware": {
				"weight": {"kilograms": 0.8, "pounds": 1},
				"maxPowerConsumption": "21W",
				"voltageRange": "44-57V",
				"networkingInterfaces": ["2.5 GbE RJ45"],
				"enclosureMaterial": ["polycarbonate"],
				"mountMaterial": ["steel"],
				"leds": ["white", "blue"],
				"systemBus": "PCIe",
				"channelBandwidth": ["20", "40", "80", "160", "240"],
				"ndaaCompliant": true,
				"certifications": ["FCC", "CE"]
			},
			"features": {
				"wireless": ["WiFi 7"],
				"captivePortal": ["guest portal"],
				"security": ["WPA3"]
			}
		}`))
	}))
	defer server.Close()

	client := NewProductDetailsClient(server.URL, 5*time.Second)
	details, err := client.FetchProductDetails(context.Background(), "u7-pro", "en")

	require.NoError(t, err)
	require.NotNil(t, details.Overview)
	assert.Equal(t, 6, details.Overview.Streams)
	require.NotNil(t, details.Overview.CoverageArea)
	assert.Equal(t, 140, details.Overview.CoverageArea.SquareMeters)
	require.NotNil(t, details.Hardware)
	assert.True(t, details.Hardware.NDAACompliant)
	assert.Nil(t, details.Hardware.Dimensions, "missing nested objects stay absent")
	assert.Nil(t, details.Software, "missing sections stay absent")
	require.NotNil(t, details.Features)
	assert.Equal(t, []string{"WiFi 7"}, details.Features.Wireless)
}

func TestFetchProductDetailsAllSectionsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewProductDetailsClient(server.URL, 5*time.Second)
	details, err := client.FetchProductDetails(context.Background(), "u7-pro", "en")

	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Nil(t, details.Overview)
	assert.Nil(t, details.Hardware)
	assert.Nil(t, details.Software)
	assert.Nil(t, details.Features)
}

func TestFetchProductDetailsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewProductDetailsClient(server.URL, 5*time.Second)
	_, err := client.FetchProductDetails(context.Background(), "u7-pro", "en")

	assert.Error(t, err)
}

func TestImageResolver(t *testing.T) {
	resolver := NewStoreImageResolver("https://cdn.example.com/API")

	assert.Equal(t, "https://cdn.example.com/API/store-pics/e7.avif", resolver.ImageURL("e7.avif"))
	assert.Empty(t, resolver.ImageURL(""))
}
