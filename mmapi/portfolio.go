package mmapi

import (
	"encoding/json"
	"fmt"
)

// portfolioQuery is the Web_GetPortfolio query as issued by the Monarch
// web application. The field set must stay in sync with the types of the
// root monarch package.
const portfolioQuery = `query Web_GetPortfolio($portfolioInput: PortfolioInput) {
  portfolio(input: $portfolioInput) {
    aggregateHoldings {
      edges {
        node {
          holdings {
            id
            type
            typeDisplay
            name
            ticker
            closingPrice
            closingPriceUpdatedAt
            quantity
            value
            account {
              id
              mask
              displayName
              institution {
                id
                name
                __typename
              }
              __typename
            }
            __typename
          }
          security {
            id
            name
            ticker
            currentPrice
            currentPriceUpdatedAt
            closingPrice
            type
            typeDisplay
            __typename
          }
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}`

// FetchPortfolio fetches the whole investment portfolio and returns the
// raw {"portfolio": ...} envelope, ready to be persisted as-is.
func (c *Client) FetchPortfolio() (json.RawMessage, error) {
	data, err := c.GraphQLCall("Web_GetPortfolio", portfolioQuery, nil)
	if err != nil {
		return nil, err
	}
	raw, ok := data["portfolio"]
	if !ok {
		return nil, fmt.Errorf("portfolio key missing from graphql response")
	}
	wrapped, err := json.Marshal(map[string]json.RawMessage{"portfolio": raw})
	if err != nil {
		return nil, err
	}
	return wrapped, nil
}
