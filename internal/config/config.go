package config

import (
	"os"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// Config holds all application configuration, including secrets, flags, etc.
type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	DBUrl            string
	SecretKey        []byte
	SendGridAPIKey   string
	AdminEmail       string
	SupportEmail     string

	SessionTokenExpiry time.Duration
	OtpExpiry          time.Duration
	RateLimitWindow    time.Duration
	MaxOtpPerWindow    int
	StaleSlotRetention time.Duration
	NotifierQueueSize  int
	SecureCookies      bool

	// Static flags fetched once from LaunchDarkly
	LDFlag_SendgridFromEmail   string
	LDFlag_SendgridSandboxMode bool
	LDFlag_AcceptFakeEmails    bool
	LDFlag_ShortOtpExpiry      bool
	LDFlag_CORSHighSecurity    bool
}

// Constants for time-based configuration defaults.
const (
	OrganizationName          = "Job Portal"
	AppName                   = "auth-service"
	DefaultSessionTokenExpiry = 24 * time.Hour
	DefaultOtpExpiry          = 60 * time.Second
	TestShortOtpExpiry        = 3 * time.Second
	DefaultRateLimitWindow    = 15 * time.Minute
	DefaultMaxOtpPerWindow    = 5
	DefaultStaleSlotRetention = 24 * time.Hour
	DefaultNotifierQueueSize  = 256
	LDConnectionTimeout       = 5 * time.Second
)

func requireEnv(name string) string {
	v := os.Getenv(name)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", name)
	}
	return v
}

// LoadConfig reads environment variables, fetches the static feature
// flags from LaunchDarkly, and returns a *Config.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	//----------------------------------------------------------------------
	// Load environment variables.
	//----------------------------------------------------------------------
	env := requireEnv("ENV")
	appUrl := requireEnv("APP_URL_FROM_ANYWHERE")
	appPort := requireEnv("APP_PORT")
	dbUrl := requireEnv("DB_URL")
	secretKey := requireEnv("SECRET_KEY")
	sendGridAPIKey := requireEnv("SENDGRID_API_KEY")
	adminEmail := requireEnv("ADMIN_EMAIL")
	supportEmail := requireEnv("SUPPORT_EMAIL")
	ldSDKKey := requireEnv("LD_SDK_KEY")

	utils.Logger.Debugf("App can be accessed at: %s", appUrl)

	//----------------------------------------------------------------------
	// Initialize the LaunchDarkly client with the LD_SDK_KEY.
	//----------------------------------------------------------------------
	ldClient, err := ld.MakeClient(ldSDKKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	if !ldClient.Initialized() {
		ldClient.Close()
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}
	defer ldClient.Close()

	//----------------------------------------------------------------------
	// Fetch the specified static flags from LaunchDarkly.
	//----------------------------------------------------------------------
	context := ldcontext.NewWithKind("service", AppName+"-"+env)

	sendgridFromEmailFlag, err := ldClient.StringVariation("sendgrid_from_email", context, "")
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving sendgrid_from_email flag")
	}
	if sendgridFromEmailFlag == "" {
		utils.Logger.Fatal("sendgrid_from_email flag is empty")
	}

	sendgridSandboxModeFlag, err := ldClient.BoolVariation("sendgrid_sandbox_mode", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving sendgrid_sandbox_mode flag")
	}
	utils.Logger.Debugf("sendgrid_sandbox_mode flag: %t", sendgridSandboxModeFlag)

	acceptFakeEmailsFlag, err := ldClient.BoolVariation("accept_fake_emails", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving accept_fake_emails flag")
	}
	utils.Logger.Debugf("accept_fake_emails flag: %t", acceptFakeEmailsFlag)

	shortOtpExpiryFlag, err := ldClient.BoolVariation("short_otp_expiry", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving short_otp_expiry flag")
	}
	utils.Logger.Debugf("short_otp_expiry flag: %t", shortOtpExpiryFlag)

	corsHighSecurityFlag, err := ldClient.BoolVariation("cors_high_security", context, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving cors_high_security flag")
	}
	utils.Logger.Debugf("cors_high_security flag: %t", corsHighSecurityFlag)

	//----------------------------------------------------------------------
	// Build and return the configuration object.
	//----------------------------------------------------------------------
	return &Config{
		OrganizationName:   OrganizationName,
		AppName:            AppName,
		AppPort:            appPort,
		AppUrl:             appUrl,
		DBUrl:              dbUrl,
		SecretKey:          []byte(secretKey),
		SendGridAPIKey:     sendGridAPIKey,
		AdminEmail:         adminEmail,
		SupportEmail:       supportEmail,
		SessionTokenExpiry: DefaultSessionTokenExpiry,
		OtpExpiry:          DefaultOtpExpiry,
		RateLimitWindow:    DefaultRateLimitWindow,
		MaxOtpPerWindow:    DefaultMaxOtpPerWindow,
		StaleSlotRetention: DefaultStaleSlotRetention,
		NotifierQueueSize:  DefaultNotifierQueueSize,
		SecureCookies:      env != "local",

		LDFlag_SendgridFromEmail:   sendgridFromEmailFlag,
		LDFlag_SendgridSandboxMode: sendgridSandboxModeFlag,
		LDFlag_AcceptFakeEmails:    acceptFakeEmailsFlag,
		LDFlag_ShortOtpExpiry:      shortOtpExpiryFlag,
		LDFlag_CORSHighSecurity:    corsHighSecurityFlag,
	}
}
