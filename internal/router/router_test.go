package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-platform/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{AuthVerifier: nil})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := newTestServer(t)

	ownerID := signup(t, ts.URL, "owner@example.com", "premium")
	adopterID := signup(t, ts.URL, "adopter@example.com", "basic")

	// 1) Owner crea mascota
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":  "Milo",
		"breed": "mixed",
		"type":  "dog",
	})

	// 2) El adoptante la ve en la vitrina; el dueño no ve la propia
	{
		st, body := doReq(t, ts.URL, "GET", "/adoption/pets", adopterID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adoption list, got %d body=%s", st, string(body))
		}
		if !containsPet(t, body, petID) {
			t.Fatalf("adopter should see pet %s in adoption list, body=%s", petID, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/adoption/pets", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adoption list for owner, got %d", st)
		}
		if containsPet(t, body, petID) {
			t.Fatalf("owner should not see own pet in adoption list, body=%s", string(body))
		}
	}

	// 3) El dueño no puede interesarse por su propia mascota
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoption/interests", ownerID, map[string]any{
			"pet_id": petID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 adopting own pet, got %d", st)
		}
	}

	// 4) El adoptante expresa interés
	interestID := expressInterest(t, ts.URL, adopterID, petID)

	// 5) Repetir es idempotente: mismo interés, no duplica
	{
		st, body := doReq(t, ts.URL, "POST", "/adoption/interests", adopterID, map[string]any{
			"pet_id": petID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 repeated interest, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID != interestID {
			t.Fatalf("repeated interest should reuse id %s, got %s", interestID, resp.ID)
		}
	}

	// 6) El adoptante no puede cambiar el status; el dueño sí
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoption/interests/"+interestID+"/status", adopterID, map[string]any{
			"status": "approved",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 status change by adopter, got %d", st)
		}

		st, body := doReq(t, ts.URL, "POST", "/adoption/interests/"+interestID+"/status", ownerID, map[string]any{
			"status": "approved",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status change by owner, got %d body=%s", st, string(body))
		}
	}

	// 7) El adoptante ve el interés aprobado
	{
		st, body := doReq(t, ts.URL, "GET", "/me/adoption-interests", adopterID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my interests, got %d", st)
		}
		var items []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Status != "approved" {
			t.Fatalf("expected one approved interest, body=%s", string(body))
		}
	}
}

func TestHTTP_PetLimit_ByPlan(t *testing.T) {
	ts := newTestServer(t)

	basicID := signup(t, ts.URL, "basic@example.com", "basic")
	premiumID := signup(t, ts.URL, "premium@example.com", "premium")

	createPet(t, ts.URL, basicID, map[string]any{"name": "A", "type": "dog"})
	createPet(t, ts.URL, basicID, map[string]any{"name": "B", "type": "cat"})

	// Tercera mascota en plan basic => 403
	st, _ := doReq(t, ts.URL, "POST", "/pets", basicID, map[string]any{
		"name": "C", "type": "bird",
	})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 over pet limit, got %d", st)
	}

	// Premium no tiene tope
	for _, name := range []string{"A", "B", "C"} {
		createPet(t, ts.URL, premiumID, map[string]any{"name": name, "type": "dog"})
	}
}

func TestHTTP_DatingRequiresPlan(t *testing.T) {
	ts := newTestServer(t)

	basicID := signup(t, ts.URL, "basic@example.com", "basic")
	startID := signup(t, ts.URL, "start@example.com", "start")

	// Basic no puede publicar para dating ni listar candidatos
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", basicID, map[string]any{
			"name": "Rex", "type": "dog", "available_for_dating": true,
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 dating pet on basic plan, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "GET", "/dating/candidates", basicID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 candidates on basic plan, got %d", st)
		}
	}

	// Start sí
	petID := createPet(t, ts.URL, startID, map[string]any{
		"name": "Luna", "type": "cat", "available_for_dating": true,
	})

	// Upgrade del basic a start habilita candidatos (y ve la mascota ajena)
	{
		st, body := doReq(t, ts.URL, "PUT", "/me", basicID, map[string]any{
			"name": "Basic User", "email": "basic@example.com", "plan": "start",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 plan upgrade, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/dating/candidates", basicID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 candidates after upgrade, got %d body=%s", st, string(body))
		}
		var items []struct {
			Pet struct {
				ID string `json:"id"`
			} `json:"pet"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Pet.ID != petID {
			t.Fatalf("expected candidate %s, body=%s", petID, string(body))
		}
	}

	// El dueño no se ve a sí mismo como candidato
	{
		st, body := doReq(t, ts.URL, "GET", "/dating/candidates", startID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 candidates for owner, got %d", st)
		}
		var items []any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("owner should not see own pet as candidate, body=%s", string(body))
		}
	}
}

func TestHTTP_DeletePet_CascadesAppointmentsNotInterests(t *testing.T) {
	ts := newTestServer(t)

	ownerID := signup(t, ts.URL, "owner@example.com", "basic")
	adopterID := signup(t, ts.URL, "adopter@example.com", "basic")

	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Milo", "type": "dog"})
	keptPetID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Mia", "type": "cat"})

	// Turno para la mascota que se va a borrar
	{
		st, body := doReq(t, ts.URL, "POST", "/appointments", ownerID, map[string]any{
			"pet_id":        petID,
			"provider_id":   "vet-1",
			"provider_name": "VetCenter",
			"date":          "2026-10-01",
			"time":          "10:00",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 book appointment, got %d body=%s", st, string(body))
		}
	}

	interestID := expressInterest(t, ts.URL, adopterID, petID)

	// Borrar la mascota
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
	}

	// Los turnos de esa mascota desaparecen
	{
		st, body := doReq(t, ts.URL, "GET", "/me/appointments", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my appointments, got %d", st)
		}
		var items []any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("appointments should be gone after pet delete, body=%s", string(body))
		}
	}

	// La otra mascota sigue
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+keptPetID, ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for surviving pet, got %d", st)
		}
	}

	// El interés queda huérfano pero sigue listado para el adoptante
	{
		st, body := doReq(t, ts.URL, "GET", "/me/adoption-interests", adopterID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my interests, got %d", st)
		}
		var items []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].ID != interestID {
			t.Fatalf("interest should survive pet delete, body=%s", string(body))
		}
	}

	// Su status ya no es editable (mascota inexistente)
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoption/interests/"+interestID+"/status", ownerID, map[string]any{
			"status": "rejected",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 status change on orphan interest, got %d", st)
		}
	}
}

func TestHTTP_BioGeneration_PlanGated(t *testing.T) {
	ts := newTestServer(t)

	basicID := signup(t, ts.URL, "basic@example.com", "basic")
	premiumID := signup(t, ts.URL, "premium@example.com", "premium")

	basicPet := createPet(t, ts.URL, basicID, map[string]any{"name": "Rex", "type": "dog"})
	premiumPet := createPet(t, ts.URL, premiumID, map[string]any{"name": "Luna", "type": "cat"})

	// Basic => 403
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+basicPet+"/bio", basicID, map[string]any{
			"traits": "juguetón",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 bio on basic plan, got %d", st)
		}
	}

	// Solo el dueño pide la bio
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+basicPet+"/bio", premiumID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 bio for non-owner, got %d", st)
		}
	}

	// Premium sin upstream configurado => 200 con texto de fallback
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+premiumPet+"/bio", premiumID, map[string]any{
			"traits": "dormilona",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 bio for premium owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			Bio string `json:"bio"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Bio == "" {
			t.Fatalf("expected non-empty bio, body=%s", string(body))
		}
	}
}

func TestHTTP_Auth_AntiEnumeration(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts.URL, "taken@example.com", "basic")

	// Mismo email otra vez => mismo 401 genérico que un login fallido
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{
			"name":     "Other",
			"email":    "taken@example.com",
			"password": "secret12",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 duplicate signup, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "taken@example.com",
			"password": "wrong-password",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad login, got %d", st)
		}
	}

	// Login correcto funciona y deja sesión activa
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{
			"email":    "taken@example.com",
			"password": "secret12",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "GET", "/auth/session", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 active session, got %d", st)
		}
	}

	// Logout limpia la sesión
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/logout", "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/auth/session", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 session after logout, got %d", st)
		}
	}
}

func TestHTTP_Favorites(t *testing.T) {
	ts := newTestServer(t)

	ownerID := signup(t, ts.URL, "owner@example.com", "basic")
	userID := signup(t, ts.URL, "fan@example.com", "basic")

	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Milo", "type": "dog"})

	{
		st, body := doReq(t, ts.URL, "PUT", "/me/favorites/"+petID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 add favorite, got %d body=%s", st, string(body))
		}
		var resp struct {
			Favorites []string `json:"favorites"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Favorites) != 1 || resp.Favorites[0] != petID {
			t.Fatalf("expected favorites=[%s], body=%s", petID, string(body))
		}
	}

	// Repetir no duplica
	{
		st, body := doReq(t, ts.URL, "PUT", "/me/favorites/"+petID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 repeated favorite, got %d", st)
		}
		var resp struct {
			Favorites []string `json:"favorites"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Favorites) != 1 {
			t.Fatalf("favorite should not duplicate, body=%s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "DELETE", "/me/favorites/"+petID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 remove favorite, got %d", st)
		}
		var resp struct {
			Favorites []string `json:"favorites"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Favorites) != 0 {
			t.Fatalf("favorites should be empty, body=%s", string(body))
		}
	}
}

func signup(t *testing.T, baseURL, email, plan string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/signup", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "secret12",
		"plan":     plan,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
	}

	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.User.ID == "" {
		t.Fatalf("signup: missing user id body=%s", string(body))
	}
	return resp.User.ID
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func expressInterest(t *testing.T, baseURL, userID, petID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/adoption/interests", userID, map[string]any{
		"pet_id": petID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 express interest, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("express interest: missing id body=%s", string(body))
	}
	return resp.ID
}

func containsPet(t *testing.T, body []byte, petID string) bool {
	t.Helper()

	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal pet list: %v body=%s", err, string(body))
	}
	for _, it := range items {
		if it.ID == petID {
			return true
		}
	}
	return false
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
