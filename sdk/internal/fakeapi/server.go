// Package fakeapi provides an in-process stand-in for the TAPS API server,
// for use in tests. It honors the same wire contract as the real API,
// including both session transports: it can hand out bearer tokens or set a
// session cookie.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk/core"
	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"
)

// Transport selects how the fake server conveys the session credential.
type Transport string

const (
	// TransportBearer makes login return an access_token that callers must
	// present as a bearer header.
	TransportBearer Transport = "BEARER"
	// TransportCookie makes login set a session cookie and return no token.
	TransportCookie Transport = "COOKIE"
)

const sessionCookieName = "taps_session"

type account struct {
	user     sdk.User
	password string
}

// Server is a fake TAPS API server. Wrap it with httptest.NewServer.
type Server struct {
	mu          sync.Mutex
	transport   Transport
	nextID        int
	accounts      map[string]*account // keyed by lowercased email
	sessions      map[string]int      // session token -> user ID
	predictions   map[int][]core.Prediction
	prescriptions map[int][]core.Prescription
	router        *mux.Router
}

// NewServer returns a fake TAPS API server using bearer token transport.
func NewServer() *Server {
	s := &Server{
		transport:     TransportBearer,
		accounts:      map[string]*account{},
		sessions:      map[string]int{},
		predictions:   map[int][]core.Prediction{},
		prescriptions: map[int][]core.Prescription{},
	}
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.HandleFunc("/health", s.checkHealth).Methods(http.MethodGet)
	router.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	router.HandleFunc("/auth/profile", s.profile).Methods(http.MethodGet)
	router.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)
	router.HandleFunc(
		"/auth/register-doctor",
		s.registerDoctor,
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/doctor/patients",
		s.listPatients,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/doctor/register-patient",
		s.registerPatient,
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/doctor/patients/{id}/predictions",
		s.listPatientPredictions,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/doctor/patients/{id}/predictions/export",
		s.exportPredictions,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/doctor/patients/{id}/prescriptions",
		s.createPrescription,
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/patients/predict",
		s.predict,
	).Methods(http.MethodPost)
	router.HandleFunc(
		"/patients/predictions",
		s.listOwnPredictions,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/patients/{id}/prescriptions",
		s.listPrescriptions,
	).Methods(http.MethodGet)
	router.HandleFunc(
		"/patients/dashboard",
		s.dashboard,
	).Methods(http.MethodGet)
	s.router = router
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTransport switches the session transport used for subsequent logins.
func (s *Server) SetTransport(transport Transport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transport = transport
}

// AddUser registers an account directly, bypassing the API.
func (s *Server) AddUser(
	name string,
	email string,
	password string,
	role sdk.Role,
) sdk.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(name, email, password, role, "")
}

// RevokeSessions invalidates every outstanding session, so the next
// authenticated call from any client receives a 401.
func (s *Server) RevokeSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = map[string]int{}
}

func (s *Server) addUserLocked(
	name string,
	email string,
	password string,
	role sdk.Role,
	hospital string,
) sdk.User {
	s.nextID++
	user := sdk.User{
		ID:       s.nextID,
		Name:     name,
		Email:    strings.ToLower(email),
		Role:     role,
		Hospital: hospital,
	}
	s.accounts[user.Email] = &account{
		user:     user,
		password: password,
	}
	return user
}

// authenticate resolves the caller's session from either transport.
func (s *Server) authenticate(r *http.Request) (sdk.User, bool) {
	token := ""
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(
		authHeader,
		"Bearer ",
	) {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := r.Cookie(sessionCookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		return sdk.User{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[token]
	if !ok {
		return sdk.User{}, false
	}
	for _, acct := range s.accounts {
		if acct.user.ID == userID {
			return acct.user, true
		}
	}
	return sdk.User{}, false
}

func (s *Server) openSession(
	w http.ResponseWriter,
	user sdk.User,
	status int,
) {
	token := uuid.NewV4().String()
	s.mu.Lock()
	s.sessions[token] = user.ID
	transport := s.transport
	s.mu.Unlock()

	respObj := struct {
		User        sdk.User `json:"user"`
		AccessToken string   `json:"access_token,omitempty"`
	}{
		User: user,
	}
	if transport == TransportBearer {
		respObj.AccessToken = token
	} else {
		http.SetCookie(
			w,
			&http.Cookie{
				Name:  sessionCookieName,
				Value: token,
				Path:  "/",
			},
		)
	}
	s.writeJSON(w, status, respObj)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	reqObj := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&reqObj); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if reqObj.Email == "" || reqObj.Password == "" {
		s.writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	s.mu.Lock()
	acct, ok := s.accounts[strings.ToLower(reqObj.Email)]
	s.mu.Unlock()
	if !ok || acct.password != reqObj.Password {
		s.writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	s.openSession(w, acct.user, http.StatusOK)
}

func (s *Server) registerDoctor(w http.ResponseWriter, r *http.Request) {
	reqObj := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Hospital string `json:"hospital"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&reqObj); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	for field, value := range map[string]string{
		"name":     reqObj.Name,
		"email":    reqObj.Email,
		"password": reqObj.Password,
		"hospital": reqObj.Hospital,
	} {
		if value == "" {
			s.writeError(
				w,
				http.StatusBadRequest,
				fmt.Sprintf("%s is required", field),
			)
			return
		}
	}
	s.mu.Lock()
	if _, ok := s.accounts[strings.ToLower(reqObj.Email)]; ok {
		s.mu.Unlock()
		s.writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	user := s.addUserLocked(
		reqObj.Name,
		reqObj.Email,
		reqObj.Password,
		sdk.RoleDoctor,
		reqObj.Hospital,
	)
	s.mu.Unlock()
	s.openSession(w, user, http.StatusCreated)
}

func (s *Server) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			User sdk.User `json:"user"`
		}{
			User: user,
		},
	)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(
		authHeader,
		"Bearer ",
	) {
		token = strings.TrimPrefix(authHeader, "Bearer ")
	} else if cookie, err := r.Cookie(sessionCookieName); err == nil {
		token = cookie.Value
	}
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	http.SetCookie(
		w,
		&http.Cookie{
			Name:   sessionCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		},
	)
	s.writeJSON(
		w,
		http.StatusOK,
		map[string]string{"message": "Logged out successfully"},
	)
}

func (s *Server) listPatients(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, sdk.RoleDoctor) {
		return
	}
	s.mu.Lock()
	patients := []core.Patient{}
	for _, acct := range s.accounts {
		if acct.user.Role == sdk.RolePatient {
			patients = append(
				patients,
				core.Patient{
					ID:    acct.user.ID,
					Name:  acct.user.Name,
					Email: acct.user.Email,
				},
			)
		}
	}
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			Patients []core.Patient `json:"patients"`
		}{
			Patients: patients,
		},
	)
}

func (s *Server) registerPatient(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, sdk.RoleDoctor) {
		return
	}
	registration := core.PatientRegistration{}
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if registration.Name == "" || registration.Email == "" {
		s.writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	generatedPassword := uuid.NewV4().String()[:8]
	s.mu.Lock()
	user := s.addUserLocked(
		registration.Name,
		registration.Email,
		generatedPassword,
		sdk.RolePatient,
		"",
	)
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusCreated,
		core.NewPatientCredentials{
			User:              user,
			GeneratedPassword: generatedPassword,
		},
	)
}

func (s *Server) listPatientPredictions(
	w http.ResponseWriter,
	r *http.Request,
) {
	if !s.requireRole(w, r, sdk.RoleDoctor) {
		return
	}
	patientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed patient ID")
		return
	}
	s.mu.Lock()
	predictions := s.predictions[patientID]
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			Predictions []core.Prediction `json:"predictions"`
		}{
			Predictions: predictions,
		},
	)
}

func (s *Server) exportPredictions(w http.ResponseWriter, r *http.Request) {
	if !s.requireRole(w, r, sdk.RoleDoctor) {
		return
	}
	patientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed patient ID")
		return
	}
	s.mu.Lock()
	predictions := s.predictions[patientID]
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/csv")
	fmt.Fprintln(w, "id,result,confidence")
	for _, prediction := range predictions {
		fmt.Fprintf(
			w,
			"%d,%s,%.2f\n",
			prediction.ID,
			prediction.Result,
			prediction.Confidence,
		)
	}
}

func (s *Server) predict(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if user.Role != sdk.RolePatient {
		s.writeError(w, http.StatusForbidden, "Patient role required")
		return
	}
	input := core.PredictionInput{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	result := "not anemic"
	if input.Hemoglobin < 12 {
		result = "anemic"
	}
	s.mu.Lock()
	prediction := core.Prediction{
		ID:         len(s.predictions[user.ID]) + 1,
		PatientID:  user.ID,
		Input:      input,
		Result:     result,
		Confidence: 0.9,
	}
	s.predictions[user.ID] = append(s.predictions[user.ID], prediction)
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			Prediction core.Prediction `json:"prediction"`
		}{
			Prediction: prediction,
		},
	)
}

func (s *Server) listOwnPredictions(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	s.mu.Lock()
	predictions := s.predictions[user.ID]
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			Predictions []core.Prediction `json:"predictions"`
		}{
			Predictions: predictions,
		},
	)
}

func (s *Server) createPrescription(w http.ResponseWriter, r *http.Request) {
	doctor, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if doctor.Role != sdk.RoleDoctor {
		s.writeError(w, http.StatusForbidden, "doctor role required")
		return
	}
	patientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed patient ID")
		return
	}
	spec := core.PrescriptionSpec{}
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if spec.Medication == "" || spec.Dosage == "" {
		s.writeError(
			w,
			http.StatusBadRequest,
			"medication and dosage are required",
		)
		return
	}
	s.mu.Lock()
	prescription := core.Prescription{
		PrescriptionSpec: spec,
		ID:               len(s.prescriptions[patientID]) + 1,
		PatientID:        patientID,
		DoctorID:         doctor.ID,
	}
	s.prescriptions[patientID] = append(
		s.prescriptions[patientID],
		prescription,
	)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, prescription)
}

func (s *Server) listPrescriptions(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	patientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Malformed patient ID")
		return
	}
	if user.Role == sdk.RolePatient && user.ID != patientID {
		s.writeError(w, http.StatusForbidden, "Not your record")
		return
	}
	s.mu.Lock()
	prescriptions := s.prescriptions[patientID]
	s.mu.Unlock()
	s.writeJSON(
		w,
		http.StatusOK,
		struct {
			Prescriptions []core.Prescription `json:"prescriptions"`
		}{
			Prescriptions: prescriptions,
		},
	)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	s.mu.Lock()
	dashboard := core.Dashboard{
		User:          user,
		Predictions:   s.predictions[user.ID],
		Prescriptions: s.prescriptions[user.ID],
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, dashboard)
}

func (s *Server) checkHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requireRole(
	w http.ResponseWriter,
	r *http.Request,
	role sdk.Role,
) bool {
	user, ok := s.authenticate(r)
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "Not authenticated")
		return false
	}
	if user.Role != role {
		s.writeError(
			w,
			http.StatusForbidden,
			fmt.Sprintf("%s role required", role),
		)
		return false
	}
	return true
}

func (s *Server) writeJSON(
	w http.ResponseWriter,
	status int,
	respObj interface{},
) {
	respBodyBytes, _ := json.Marshal(respObj) // nolint: errcheck
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBodyBytes) // nolint: errcheck
}

func (s *Server) writeError(
	w http.ResponseWriter,
	status int,
	message string,
) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
