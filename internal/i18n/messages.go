package i18n

// catalogue holds every user-facing string as {es, en}. Spanish is the
// product language; English exists for operators who ask for it.
var catalogue = map[string][2]string{
	"no_connection":        {"No hay conexion con el servidor. Intentalo de nuevo.", "Cannot reach the server. Try again."},
	"flow_busy":            {"Ya hay una operacion en curso", "An operation is already running"},
	"auth_missing_login":   {"Introduce email y password.", "Enter email and password."},
	"auth_missing_fields":  {"Email y password son obligatorios.", "Email and password are required."},
	"auth_invalid_email":   {"Introduce un email valido.", "Enter a valid email."},
	"auth_short_password":  {"La password debe tener al menos 8 caracteres.", "The password must be at least 8 characters long."},
	"auth_login_ok":        {"Inicio de sesion correcto. Bienvenido/a.", "Signed in. Welcome."},
	"auth_register_status": {"Cuenta creada. Revisa tu correo para verificarla antes de iniciar sesion.", "Account created. Check your inbox to verify it before signing in."},
	"auth_register_ok":     {"Registro correcto. Revisa tu correo y confirma el enlace para poder iniciar sesion.", "Registered. Confirm the link we sent you to be able to sign in."},
	"auth_logout":          {"Sesion cerrada", "Signed out"},

	"auth_bad_credentials":    {"Email o password incorrectos.", "Wrong email or password."},
	"auth_not_confirmed":      {"Tu cuenta aun no esta verificada. Revisa tu correo y confirma el registro.", "Your account is not verified yet. Check your inbox and confirm it."},
	"auth_already_registered": {"Este email ya esta registrado. Inicia sesion con esa cuenta.", "This email is already registered. Sign in with it."},
	"auth_password_too_short": {"La password es demasiado corta. Usa al menos 8 caracteres.", "The password is too short. Use at least 8 characters."},
	"auth_email_format":       {"El formato del email no es valido.", "The email format is not valid."},
	"auth_unavailable":        {"No se puede autenticar ahora mismo. Contacta al administrador.", "Authentication is unavailable right now. Contact the administrator."},
	"auth_login_failed":       {"No se pudo iniciar sesion.", "Could not sign in."},
	"auth_register_failed":    {"No se pudo completar el registro.", "Could not complete the registration."},

	"backend_connected":   {"Conectado al backend API", "Connected to the backend API"},
	"backend_unreachable": {"No se pudo conectar al backend: {{.Error}}", "Could not connect to the backend: {{.Error}}"},
	"backend_unavailable": {"Backend no disponible en {{.Base}}", "Backend not available at {{.Base}}"},

	"leads_reloaded":      {"Tabla de leads recargada", "Lead table reloaded"},
	"leads_reload_failed": {"No se pudo recargar la tabla", "Could not reload the table"},
	"leads_selected":      {"{{.Count}} leads seleccionados", "{{.Count}} leads selected"},
	"export_empty":        {"No hay leads para exportar", "There are no leads to export"},
	"export_ok":           {"CSV exportado correctamente", "CSV exported"},
	"enrich_done":         {"Emails enriquecidos: {{.Enriched}} de {{.Candidates}}", "Emails enriched: {{.Enriched}} of {{.Candidates}}"},

	"capture_missing_params": {"Introduce una zona o codigo postal", "Enter a zone or postal code"},
	"capture_connecting":     {"Conectando con API local...", "Connecting to the local API..."},
	"capture_step_connect":   {"Conectando con backend...", "Connecting to the backend..."},
	"capture_step_update":    {"Actualizando leads...", "Updating leads..."},
	"capture_step_done":      {"Proceso completado", "Done"},
	"capture_found":          {"Captacion completada: {{.Found}} encontrados", "Capture finished: {{.Found}} found"},
	"capture_saved":          {"Nuevos guardados: {{.Saved}}", "Newly saved: {{.Saved}}"},
	"capture_activity":       {"Captacion ejecutada con {{.Source}}: {{.Found}} resultados", "Capture run with {{.Source}}: {{.Found}} results"},
	"capture_done":           {"Busqueda completada: {{.Found}} resultados, {{.Saved}} nuevos guardados", "Search finished: {{.Found}} results, {{.Saved}} new saved"},
	"capture_failed":         {"Error en busqueda", "Search failed"},

	"template_missing_fields": {"Completa todos los campos de la plantilla", "Fill in every template field"},
	"template_saved":          {"Plantilla \"{{.Name}}\" guardada", "Template \"{{.Name}}\" saved"},
	"template_saved_activity": {"Plantilla guardada: {{.Name}}", "Template saved: {{.Name}}"},
	"template_loaded":         {"Plantilla \"{{.Name}}\" cargada", "Template \"{{.Name}}\" loaded"},
	"template_not_selected":   {"Selecciona una plantilla de email", "Pick an email template"},
	"template_not_found":      {"Plantilla no encontrada", "Template not found"},
	"template_preview":        {"Vista previa actualizada", "Preview updated"},

	"campaign_no_recipients": {"No hay leads seleccionados con email", "No selected lead has an email"},
	"campaign_step_sending":  {"Enviando campana...", "Sending campaign..."},
	"campaign_step_done":     {"Campana completada", "Campaign finished"},
	"campaign_result":        {"OK: {{.Sent}} | Errores: {{.Errors}}", "OK: {{.Sent}} | Errors: {{.Errors}}"},
	"campaign_done":          {"Campana enviada. OK: {{.Sent}}, errores: {{.Errors}}", "Campaign sent. OK: {{.Sent}}, errors: {{.Errors}}"},
	"campaign_done_activity": {"Campana finalizada. OK: {{.Sent}}, errores: {{.Errors}}", "Campaign finished. OK: {{.Sent}}, errors: {{.Errors}}"},
	"campaign_failed":        {"Error en campana", "Campaign failed"},
	"campaign_paused":        {"Campana pausada", "Campaign paused"},
	"campaign_pause_note":    {"Pausa solicitada (backend envia lote atomico)", "Pause requested (the backend sends the batch atomically)"},
	"quick_send_no_email":    {"Este lead no tiene email", "This lead has no email"},
	"quick_send_ok":          {"Email enviado a {{.Name}}", "Email sent to {{.Name}}"},
	"quick_send_failed":      {"Error enviando email", "Error sending email"},
	"history_cleared":        {"Historial limpiado", "History cleared"},

	"smtp_missing": {"Introduce email y App Password", "Enter email and App Password"},
	"smtp_ok":      {"Datos de Gmail listos para envio", "Gmail settings ready to send"},
	"smtp_failed":  {"No se pudo conectar con el servidor SMTP: {{.Error}}", "Could not connect to the SMTP server: {{.Error}}"},

	"console_auth_required": {"Inicia sesion para continuar", "Sign in to continue"},
	"console_invalid_json":  {"JSON invalido", "Invalid JSON"},
	"console_invalid_id":    {"Identificador invalido", "Invalid id"},
	"console_not_found":     {"Elemento no encontrado", "Item not found"},
	"console_rate_limited":  {"Demasiados intentos. Espera un momento.", "Too many attempts. Wait a moment."},
}
