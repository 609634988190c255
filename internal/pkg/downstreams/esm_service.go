package downstreams

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/config"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/consts"
	dmodels "github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/downstreams/models"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/log_messages"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/logger"
	"github.com/EngrDhee/automatic-credit-debit-operations/internal/pkg/models"
)

const loginRequestTemplate = `<soapenv:Envelope xmlns:soapenv="%s" xmlns:v2="%s">
   <soapenv:Header/>
   <soapenv:Body>
      <v2:LoginRequest>
         <v2:loginId>%s</v2:loginId>
         <v2:passwd>%s</v2:passwd>
         <v2:wsdlVersion>V_1</v2:wsdlVersion>
      </v2:LoginRequest>
   </soapenv:Body>
</soapenv:Envelope>`

const logoutRequestTemplate = `<soapenv:Envelope xmlns:soapenv="%s" xmlns:v2="%s">
   <soapenv:Header/>
   <soapenv:Body>
      <v2:LogoutRequest>
         <v2:SessionInfo>
            <v2:sessionId>%s</v2:sessionId>
         </v2:SessionInfo>
      </v2:LogoutRequest>
   </soapenv:Body>
</soapenv:Envelope>`

const retrieveRequestTemplate = `<soap-env:Envelope xmlns:soap-env="%s">
    <soap-env:Body>
        <ns0:RetrieveRequest xmlns:ns0="%s">
            <ns0:SessionInfo>
                <ns0:sessionId>%s</ns0:sessionId>
            </ns0:SessionInfo>
            <ns0:RequestInfo>
                <ns0:ReqID></ns0:ReqID>
            </ns0:RequestInfo>
            <ns0:TaskList>
                <ns0:Task>
                    <ns0:Name>%s</ns0:Name>
                    <ns0:QueryCriteria>
                        <ns0:Param>
                            <ns0:Name>%s</ns0:Name>
                            <ns0:Value>%s</ns0:Value>
                        </ns0:Param>
                    </ns0:QueryCriteria>
                    <ns0:QueryData>
                        <ns0:Collection>
                            <ns0:CollectionName>%s</ns0:CollectionName>
                            <ns0:Attributes>
%s
                            </ns0:Attributes>
                        </ns0:Collection>
                    </ns0:QueryData>
                </ns0:Task>
                <ns0:Task>
                    <ns0:Name>%s</ns0:Name>
                    <ns0:QueryCriteria>
                        <ns0:Param>
                            <ns0:Name>%s</ns0:Name>
                            <ns0:Value>%s</ns0:Value>
                        </ns0:Param>
                    </ns0:QueryCriteria>
                    <ns0:QueryData>
                        <ns0:Collection>
                            <ns0:CollectionName>%s</ns0:CollectionName>
                            <ns0:Attributes>
%s
                            </ns0:Attributes>
                        </ns0:Collection>
                    </ns0:QueryData>
                </ns0:Task>
            </ns0:TaskList>
        </ns0:RetrieveRequest>
    </soap-env:Body>
</soap-env:Envelope>`

const balanceSubmitTemplate = `<S:Envelope xmlns:S="%s">
    <S:Body>
        <SubmitRequest xmlns="%s">
            <SessionInfo>
                <sessionId>%s</sessionId>
            </SessionInfo>
            <RequestInfo>
                <ReqID></ReqID>
            </RequestInfo>
            <TaskList>
                <Task>
                    <Name>%s</Name>
                    <ParamList>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>N</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>N</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                    </ParamList>
                    <ContinueOnFailure>True</ContinueOnFailure>
                </Task>
            </TaskList>
        </SubmitRequest>
    </S:Body>
</S:Envelope>`

const bucketSubmitTemplate = `<S:Envelope xmlns:S="%s">
    <S:Body>
        <SubmitRequest xmlns="%s">
            <SessionInfo>
                <sessionId>%s</sessionId>
            </SessionInfo>
            <RequestInfo>
                <ReqID>%s</ReqID>
            </RequestInfo>
            <TaskList>
                <Task>
                    <Name>%s</Name>
                    <ParamList>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s%s</Value>
                        </Param>
                    </ParamList>
                    <ContinueOnFailure>True</ContinueOnFailure>
                </Task>
                <Task>
                    <Name>%s</Name>
                    <ParamList>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                        <Param>
                            <Name>%s</Name>
                            <Value>%s</Value>
                        </Param>
                    </ParamList>
                </Task>
            </TaskList>
        </SubmitRequest>
    </S:Body>
</S:Envelope>`

var digitsRe = regexp.MustCompile(`\d+`)

// ESMService is the session-oriented SOAP client for the eSM charging
// platform. One session is opened per run and shared by every request; the
// upstream is stateful per session, so calls are issued strictly
// sequentially.
type ESMService struct {
	cfg        *config.AppConfig
	httpClient *http.Client
	sessionID  string
}

func NewESMService(cfg *config.AppConfig) *ESMService {
	return &ESMService{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
}

// SessionID exposes the current session for logging only.
func (s *ESMService) SessionID() string {
	return s.sessionID
}

// Login opens the session and stores the returned session id.
func (s *ESMService) Login(ctx context.Context) error {
	payload := fmt.Sprintf(loginRequestTemplate,
		s.cfg.Soap.EnvelopeNS, s.cfg.Soap.ServiceNS,
		s.cfg.Soap.Username, s.cfg.Soap.Password,
	)
	logger.Info(ctx, "logging in to eSM as %s", s.cfg.Soap.Username)

	body, err := s.post(ctx, payload)
	if err != nil {
		return err
	}
	sessionID, ok := dmodels.ElementText(body, "sessionId")
	if !ok || sessionID == "" {
		logger.Error(ctx, log_messages.ErrorSessionLoginFailed, "no sessionId in response")
		return models.ErrorSessionLoginFailed
	}
	s.sessionID = sessionID
	return nil
}

// Logout closes the session. Safe to call when login never succeeded.
func (s *ESMService) Logout(ctx context.Context) error {
	if s.sessionID == "" {
		return nil
	}
	payload := fmt.Sprintf(logoutRequestTemplate,
		s.cfg.Soap.EnvelopeNS, s.cfg.Soap.ServiceNS, s.sessionID,
	)
	_, err := s.post(ctx, payload)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorSessionLogoutFailed, err)
		return err
	}
	s.sessionID = ""
	return nil
}

// RetrieveSubscriber runs the account and bundle query tasks for one
// subscriber and returns the raw result pairs in document order.
func (s *ESMService) RetrieveSubscriber(ctx context.Context, msisdn string) ([]dmodels.ResultPair, error) {
	acct := s.cfg.Schema.AccountQueryNames
	bid := s.cfg.Schema.BundleQueryNames

	// The msisdn field doubles as the first queried attribute.
	acctAttrs := append([]string{acct[1]}, acct[3:9]...)
	bidAttrs := bid[3:9]

	payload := fmt.Sprintf(retrieveRequestTemplate,
		s.cfg.Soap.EnvelopeNS, s.cfg.Soap.ServiceNS, s.sessionID,
		acct[0], acct[1], msisdn, acct[2], attributeItems(acctAttrs),
		bid[0], bid[1], msisdn, bid[2], attributeItems(bidAttrs),
	)

	body, err := s.post(ctx, payload)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorRetrievingSubscriberInfo, err)
		return nil, models.ErrorSubscriberLookupFailed
	}
	pairs, err := dmodels.ParseResultPairs(body)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorUnmarshallingSoapBody, err)
		return nil, models.ErrorSubscriberLookupFailed
	}
	if len(pairs) == 0 {
		return nil, models.ErrorEmptySoapResponse
	}
	return pairs, nil
}

// AdjustMainBalance submits a main balance adjustment. The amount travels in
// plain naira; the new balance comes back in counter units.
func (s *ESMService) AdjustMainBalance(ctx context.Context, msisdn string, amount models.Money, direction consts.Direction) (string, models.Money, error) {
	bal := s.cfg.Schema.MainAdjustNames
	payload := fmt.Sprintf(balanceSubmitTemplate,
		s.cfg.Soap.EnvelopeNS, s.cfg.Soap.ServiceNS, s.sessionID,
		bal[0],
		bal[1], msisdn,
		bal[2], string(direction),
		bal[3],
		bal[4],
		bal[5], amount.Naira(),
	)

	body, err := s.post(ctx, payload)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorAdjustingBalance, err)
		return "", 0, err
	}
	pairs, err := dmodels.ParseResultPairs(body)
	if err != nil || len(pairs) == 0 {
		logger.Error(ctx, log_messages.ErrorAdjustingBalance, err)
		return "", 0, models.ErrorAdjustmentTransportFailed
	}

	status := pairs[0].Value
	// The last pair carries the resulting balance, possibly wrapped in text.
	raw := digitsRe.FindString(pairs[len(pairs)-1].Value)
	newBalance, err := models.ParseCounter(raw)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorAdjustingBalance, err)
		return status, 0, models.ErrorAdjustmentTransportFailed
	}
	return status, newBalance, nil
}

// AdjustBucketBalance submits the two-task bucket adjustment: the bundle
// state task followed by the counter adjustment itself. The amount travels
// in counter units.
func (s *ESMService) AdjustBucketBalance(ctx context.Context, msisdn string, amount models.Money, bucketID string, direction consts.Direction) (string, error) {
	buc := s.cfg.Schema.BucketAdjustNames
	payload := fmt.Sprintf(bucketSubmitTemplate,
		s.cfg.Soap.EnvelopeNS, s.cfg.Soap.ServiceNS, s.sessionID,
		amount.Counter(),
		buc[0],
		buc[1], msisdn,
		buc[2], consts.BervoBundlePrefix, bucketID,
		buc[3],
		buc[1], msisdn,
		buc[4], bucketID,
		buc[5], string(direction),
		buc[6], amount.Counter(),
	)

	body, err := s.post(ctx, payload)
	if err != nil {
		logger.Error(ctx, log_messages.ErrorAdjustingBucket, err)
		return "", err
	}
	pairs, err := dmodels.ParseResultPairs(body)
	if err != nil || len(pairs) < 2 {
		logger.Error(ctx, log_messages.ErrorAdjustingBucket, err)
		return "", models.ErrorAdjustmentTransportFailed
	}
	// The second pair is the counter-adjustment task result.
	return pairs[1].Value, nil
}

func (s *ESMService) post(ctx context.Context, payload string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Soap.EndpointURL(), strings.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", s.cfg.Soap.ContentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func attributeItems(names []string) string {
	items := make([]string, 0, len(names))
	for _, name := range names {
		items = append(items, fmt.Sprintf("                                <ns0:item>%s</ns0:item>", name))
	}
	return strings.Join(items, "\n")
}
