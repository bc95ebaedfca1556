package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"careerhub/config"
	"careerhub/structs"
	"careerhub/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthController handles the Cognito signup/login flows. After a
// successful Cognito login it ensures the local user record exists and
// issues the API's own bearer token.
type AuthController struct {
	cfg      *config.Config
	database *mongo.Database
}

func NewAuthController(cfg *config.Config, database *mongo.Database) *AuthController {
	return &AuthController{cfg: cfg, database: database}
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var request structs.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := ac.signUpWithCognito(c, request.Email, request.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sign-up successful"})
}

func (ac *AuthController) VerifyEmail(c *gin.Context) {
	var request structs.VerifyEmailRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := ac.verifyEmailWithCognito(c, request.Email, request.ConfirmationCode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verification successful"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var request structs.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	if err := ac.loginWithCognito(c, request.Email, request.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	// First authenticated touch creates the user record.
	if err := utils.EnsureUser(c.Request.Context(), ac.database, request.Email); err != nil {
		log.Println("Failed to ensure user record:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := utils.GenerateJWTToken(request.Email)
	if err != nil {
		log.Println("Failed to generate token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}

func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var request structs.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email format"})
		return
	}

	if err := ac.initiateForgotPassword(c, request.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
}

func (ac *AuthController) VerifyForgotPassword(c *gin.Context) {
	var request structs.VerifyForgotPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	if err := ac.confirmForgotPassword(c, request.Email, request.Code, request.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm password reset", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password successfully changed"})
}

func (ac *AuthController) VerifyToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token format"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(tokenParts[1])
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "email": email})
}

func (ac *AuthController) cognitoClient(c *gin.Context) (*cognitoidentityprovider.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(c.Request.Context(), awsConfig.WithRegion(ac.cfg.Cognito.Region))
	if err != nil {
		log.Println("Error loading AWS config:", err)
		return nil, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return cognitoidentityprovider.NewFromConfig(awsCfg), nil
}

func (ac *AuthController) signUpWithCognito(c *gin.Context, email, password string) error {
	client, err := ac.cognitoClient(c)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, ac.cfg.Cognito.AppClientId, ac.cfg.Cognito.AppClientSecret)

	signupInput := cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(ac.cfg.Cognito.AppClientId),
		Password:   aws.String(password),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
			{
				Name:  aws.String("nickname"),
				Value: aws.String(utils.ExtractNameFromEmail(email)),
			},
		},
	}

	if _, err := client.SignUp(c.Request.Context(), &signupInput); err != nil {
		log.Println("Error during sign-up:", err)
		return fmt.Errorf("sign-up failed: %v", err)
	}

	return nil
}

func (ac *AuthController) verifyEmailWithCognito(c *gin.Context, email, confirmationCode string) error {
	client, err := ac.cognitoClient(c)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, ac.cfg.Cognito.AppClientId, ac.cfg.Cognito.AppClientSecret)

	confirmSignUpInput := cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(ac.cfg.Cognito.AppClientId),
		ConfirmationCode: aws.String(confirmationCode),
		Username:         aws.String(email),
		SecretHash:       aws.String(secretHash),
	}

	if _, err := client.ConfirmSignUp(c.Request.Context(), &confirmSignUpInput); err != nil {
		log.Println("Error during email verification:", err)
		return fmt.Errorf("email verification failed: %v", err)
	}

	return nil
}

func (ac *AuthController) loginWithCognito(c *gin.Context, email, password string) error {
	client, err := ac.cognitoClient(c)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, ac.cfg.Cognito.AppClientId, ac.cfg.Cognito.AppClientSecret)

	authInput := cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(ac.cfg.Cognito.AppClientId),
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": secretHash,
		},
	}

	authOutput, err := client.InitiateAuth(c.Request.Context(), &authInput)
	if err != nil {
		return fmt.Errorf("authentication failed")
	}
	if authOutput.AuthenticationResult == nil || authOutput.AuthenticationResult.AccessToken == nil {
		return fmt.Errorf("authentication incomplete")
	}

	return nil
}

func (ac *AuthController) initiateForgotPassword(c *gin.Context, email string) error {
	client, err := ac.cognitoClient(c)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, ac.cfg.Cognito.AppClientId, ac.cfg.Cognito.AppClientSecret)

	forgotPasswordInput := cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(ac.cfg.Cognito.AppClientId),
		Username:   aws.String(email),
		SecretHash: aws.String(secretHash),
	}

	if _, err := client.ForgotPassword(c.Request.Context(), &forgotPasswordInput); err != nil {
		return fmt.Errorf("error initiating forgot password: %v", err)
	}

	return nil
}

func (ac *AuthController) confirmForgotPassword(c *gin.Context, email, code, newPassword string) error {
	client, err := ac.cognitoClient(c)
	if err != nil {
		return err
	}

	secretHash := utils.GenerateSecretHash(email, ac.cfg.Cognito.AppClientId, ac.cfg.Cognito.AppClientSecret)

	confirmForgotPasswordInput := cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(ac.cfg.Cognito.AppClientId),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       aws.String(secretHash),
	}

	if _, err := client.ConfirmForgotPassword(c.Request.Context(), &confirmForgotPasswordInput); err != nil {
		return fmt.Errorf("error confirming forgot password: %v", err)
	}

	return nil
}
